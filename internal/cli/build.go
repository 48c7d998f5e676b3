package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-bitree/Trees"
)

// newBuildCommand creates a tree, applies inserts then deletes, and serializes it.
func newBuildCommand(opts *Options) *cobra.Command {
	var (
		root     string
		inserts  []string
		deletes  []string
		out      string
		maxNodes int
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a tree from inserts and deletes and serialize it",
		Example: "  bitree build --root m -i f,t,b,z -d t --out tree.txt\n" +
			"  bitree build -r m -i f -e bfs",
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())
			if !cmd.Flags().Changed("root") {
				return usageError(fmt.Errorf("--root is required"))
			}
			enc, err := encodingFlag(cmd, opts)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("max-nodes") {
				maxNodes = opts.Config.MaxNodes
			} else if maxNodes < 0 {
				return usageError(fmt.Errorf("--max-nodes must not be negative"))
			}
			var treeOpts []Trees.Option
			if maxNodes > 0 {
				treeOpts = append(treeOpts, Trees.WithNodeLimit(maxNodes))
			}

			tree, err := Trees.NewBiTree(root, treeOpts...)
			if err != nil {
				return err
			}
			defer tree.Destroy()
			for _, v := range inserts {
				inserted, err := tree.Insert(v)
				if err != nil {
					return fmt.Errorf("insert %q: %w", v, err)
				}
				logger.Debug("insert", "payload", v, "inserted", inserted, "size", tree.Size())
			}
			for _, v := range deletes {
				deleted, err := tree.Delete(v)
				if err != nil {
					return fmt.Errorf("delete %q: %w", v, err)
				}
				logger.Debug("delete", "payload", v, "deleted", deleted, "size", tree.Size())
			}

			if out == "-" {
				err = Trees.Serialize(cmd.OutOrStdout(), tree.Root(), enc)
			} else {
				err = tree.SerializeToFile(out, enc)
			}
			if err != nil {
				return fmt.Errorf("serialize: %w", err)
			}
			logger.Info("tree built", "size", tree.Size(), "depth", tree.Depth(), "encoding", enc, "out", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&root, "root", "r", "", "Payload of the root node (required)")
	cmd.Flags().StringSliceVarP(&inserts, "insert", "i", nil, "Payloads to insert, in order (repeatable or comma separated)")
	cmd.Flags().StringSliceVarP(&deletes, "delete", "d", nil, "Payloads to delete after the inserts, in order")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "Output file, - for standard output")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "Node budget, 0 for none; defaults to BITREE_MAX_NODES")
	addEncodingFlag(cmd)
	return cmd
}
