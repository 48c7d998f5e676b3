package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-bitree/Trees"
)

func newShowCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Draw a serialized tree",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadTree(cmd, opts, args[0])
			if err != nil {
				return err
			}
			defer tree.Destroy()
			_, err = fmt.Fprint(cmd.OutOrStdout(), tree.String())
			return err
		},
	}
	addEncodingFlag(cmd)
	return cmd
}

func newSearchCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search FILE PAYLOAD",
		Short: "Search a serialized tree breadth-first or depth-first and draw the matching subtree",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := Trees.ParseStrategy(stringFlag(cmd, "strategy", opts.Config.Strategy))
			if err != nil {
				return usageError(err)
			}
			tree, err := loadTree(cmd, opts, args[0])
			if err != nil {
				return err
			}
			defer tree.Destroy()
			res, found, err := tree.Search(args[1], strategy)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("%w: %q (%s)", ErrNotFound, args[1], strategy)
			}
			LoggerFromContext(cmd.Context()).Debug("payload found", "payload", args[1], "strategy", strategy, "key", res.Root().Key)
			_, err = fmt.Fprint(cmd.OutOrStdout(), res.String())
			return err
		},
	}
	cmd.Flags().StringP("strategy", "s", "", "Search strategy (bfs, dfs); defaults to BITREE_STRATEGY or bfs")
	addEncodingFlag(cmd)
	return cmd
}

func newWalkCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk FILE",
		Short: "Print the payloads of a serialized tree in traversal order, one per line",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := Trees.ParseOrder(stringFlag(cmd, "order", opts.Config.Order))
			if err != nil {
				return usageError(err)
			}
			tree, err := loadTree(cmd, opts, args[0])
			if err != nil {
				return err
			}
			defer tree.Destroy()
			seq, err := tree.Traverse(order)
			if err != nil {
				return err
			}
			for v := range seq {
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), v); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().String("order", "", "Traversal order (preorder, inorder, postorder, levelorder); defaults to BITREE_ORDER or inorder")
	addEncodingFlag(cmd)
	return cmd
}

func newStatsCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Print size, depth, shape predicates and extremes of a serialized tree",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadTree(cmd, opts, args[0])
			if err != nil {
				return err
			}
			defer tree.Destroy()
			w := cmd.OutOrStdout()
			lo, _ := tree.Minimum()
			hi, _ := tree.Maximum()
			_, err = fmt.Fprintf(w, "size: %d\ndepth: %d\nfull: %t\ncomplete: %t\nmin: %s\nmax: %s\n",
				tree.Size(), tree.Depth(), tree.IsFull(), tree.IsComplete(), lo, hi)
			return err
		},
	}
	addEncodingFlag(cmd)
	return cmd
}
