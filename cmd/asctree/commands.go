package main

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/asctree/converters"
	"github.com/katalvlaran/asctree/core"
	"github.com/katalvlaran/asctree/dfs"
	"github.com/katalvlaran/asctree/matrix"
)

func newFacesCmd(opts *rootOptions) *cobra.Command {
	var (
		size  int
		paths bool
	)
	cmd := &cobra.Command{
		Use:   "faces [file]",
		Short: "List the faces of a complex, smallest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.loadTree(args)
			if err != nil {
				return err
			}
			var faces []core.Face
			if paths {
				faces, err = dfs.Paths(t, dfs.WithContext(cmd.Context()))
			} else {
				faces, err = dfs.Faces(t, dfs.WithContext(cmd.Context()))
			}
			if err != nil {
				return err
			}
			if size > 0 {
				faces = dfs.FacesOfSize(faces, size)
			}
			log.Debugf("%d faces", len(faces))
			for _, f := range faces {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&size, "size", "k", 0, "only faces with this many vertices")
	cmd.Flags().BoolVar(&paths, "paths", false, "print raw root-to-node paths in post-order")
	return cmd
}

func newBoundaryCmd(opts *rootOptions) *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "boundary -k K [file]",
		Short: "Print the boundary matrix from K-faces to (K-1)-faces",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.loadTree(args)
			if err != nil {
				return err
			}
			b, err := matrix.NewBoundaryMatrix(t, k)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			r, c := b.Shape()
			fmt.Fprintf(out, "boundary k=%d: %dx%d\n", k, r, c)
			fmt.Fprintf(out, "rows: %s\n", joinFaces(b.Rows))
			fmt.Fprintf(out, "cols: %s\n", joinFaces(b.Cols))
			fmt.Fprint(out, b.Mat)
			return nil
		},
	}
	cmd.Flags().IntVarP(&k, "dim", "k", 2, "size of the column faces")
	return cmd
}

func newRankCmd(opts *rootOptions) *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "rank [-k K] [file]",
		Short: "Print the rank of boundary matrices over GF(2) and over the reals",
		Long: "Print the rank of boundary matrices over GF(2) and over the reals.\n" +
			"Without -k every dimension from 1 up to the largest face is reported.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.loadTree(args)
			if err != nil {
				return err
			}
			ks := []int{k}
			if k <= 0 {
				faces, err := dfs.Faces(t, dfs.WithContext(cmd.Context()))
				if err != nil {
					return err
				}
				ks = ks[:0]
				for i := 1; i <= maxFaceSize(faces); i++ {
					ks = append(ks, i)
				}
			}
			for _, kk := range ks {
				b, err := matrix.NewBoundaryMatrix(t, kk)
				if err != nil {
					return err
				}
				gf2Rank, err := b.RankMod2()
				if err != nil {
					return err
				}
				realRank, err := b.Rank(0)
				if err != nil {
					return err
				}
				r, c := b.Shape()
				fmt.Fprintf(cmd.OutOrStdout(), "k=%d shape=%dx%d rank_gf2=%d rank_real=%d\n",
					kk, r, c, gf2Rank, realRank)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&k, "dim", "k", 0, "size of the column faces (0 = all)")
	return cmd
}

func newEdgesCmd(opts *rootOptions) *cobra.Command {
	format := newFormatValue(converters.FormatYAML, converters.FormatYAML, converters.FormatTOML)
	cmd := &cobra.Command{
		Use:   "edges [file]",
		Short: "Export the face-path tree as a node/edge list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.loadTree(args)
			if err != nil {
				return err
			}
			nodes, edges, err := converters.ToNodeEdgeList(t)
			if err != nil {
				return err
			}
			return converters.Encode(cmd.OutOrStdout(), format.String(), nodes, edges)
		},
	}
	cmd.Flags().VarP(format, "format", "o", "output format (yaml, toml)")
	return cmd
}

func newTreeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tree [file]",
		Short: "Draw the face-path tree, one node per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.loadTree(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, core.RootLabel)
			_, err = dfs.Walk(t,
				dfs.WithContext(cmd.Context()),
				dfs.WithOnVisit(func(id core.NodeID, path core.Face) error {
					if id == core.Root {
						return nil
					}
					n, err := t.Node(id)
					if err != nil {
						return err
					}
					line := strings.Repeat("  ", len(path)) + n.Label
					if n.Mirror {
						line += " (mirror)"
					}
					fmt.Fprintln(out, line)
					return nil
				}))
			return err
		},
	}
}

func joinFaces(faces []core.Face) string {
	parts := make([]string, len(faces))
	for i, f := range faces {
		parts[i] = f.String()
	}
	return strings.Join(parts, " ")
}

func maxFaceSize(faces []core.Face) int {
	m := 0
	for _, f := range faces {
		if len(f) > m {
			m = len(f)
		}
	}
	return m
}
