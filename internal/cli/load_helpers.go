package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-bitree/Trees"
)

// stringFlag returns the flag value if it was set explicitly, fallback otherwise.
func stringFlag(cmd *cobra.Command, name, fallback string) string {
	if f := cmd.Flag(name); f != nil && f.Changed {
		return f.Value.String()
	}
	return fallback
}

// addEncodingFlag registers the --encoding flag shared by commands reading or writing tree files.
func addEncodingFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("encoding", "e", "", "Serialization algorithm (dfs, bfs); defaults to BITREE_ENCODING or dfs")
}

func encodingFlag(cmd *cobra.Command, opts *Options) (Trees.Encoding, error) {
	enc, err := Trees.ParseEncoding(stringFlag(cmd, "encoding", opts.Config.Encoding))
	if err != nil {
		return "", usageError(err)
	}
	return enc, nil
}

// loadTree deserializes the tree stored at path, "-" meaning standard input,
// and adopts it as a search tree under the configured node budget.
func loadTree(cmd *cobra.Command, opts *Options, path string) (*Trees.BiTree, error) {
	enc, err := encodingFlag(cmd, opts)
	if err != nil {
		return nil, err
	}
	logger := LoggerFromContext(cmd.Context())
	var tree *Trees.BiTree
	if path == "-" {
		root, err := Trees.DeserializeAs(cmd.InOrStdin(), enc)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		tree, err = Trees.FromRoot(root, opts.Config.TreeOptions()...)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
	} else if tree, err = Trees.ReadFile(path, enc, opts.Config.TreeOptions()...); err != nil {
		return nil, err
	}
	logger.Debug("tree loaded", "path", path, "encoding", enc, "size", tree.Size())
	return tree, nil
}
