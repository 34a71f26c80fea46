package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/vito/imp/pkg/imp"
	"github.com/vito/imp/pkg/ioctx"
)

func listCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in samples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadProject(cmd, cfg); err != nil {
				return err
			}
			r := newRenderer(!cfg.NoColor)
			ctx := cmd.Context()
			for _, sample := range imp.Samples {
				ioctx.Println(ctx, r.name(sample.Name)+"  "+r.dim(sample.Description))
				ioctx.Println(ctx, "    "+sample.Node.Pretty())
			}
			return nil
		},
	}
}

func prettyCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "pretty sample...",
		Short: "Print samples as source text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadProject(cmd, cfg); err != nil {
				return err
			}
			samples, err := imp.SelectSamples(args)
			if err != nil {
				return err
			}
			for _, sample := range samples {
				ioctx.Println(cmd.Context(), sample.Node.Pretty())
			}
			return nil
		},
	}
}

func checkCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check sample...",
		Short: "Type check samples without running them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadProject(cmd, cfg); err != nil {
				return err
			}
			samples, err := imp.SelectSamples(args)
			if err != nil {
				return err
			}
			r := newRenderer(!cfg.NoColor)
			for _, sample := range samples {
				if err := checkSample(cmd.Context(), r, sample); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func checkSample(ctx context.Context, r renderer, sample imp.Sample) error {
	types := imp.NewTypeEnv()

	var verdict string
	switch n := sample.Node.(type) {
	case imp.Expr:
		t := n.Infer(ctx, types)
		verdict = r.verdict(t.WellTyped(), t.String())
	case imp.Stmt:
		ok, err := n.Check(ctx, types)
		if err != nil {
			return fmt.Errorf("checking %s: %w", sample.Name, err)
		}
		verdict = r.verdict(ok, fmt.Sprintf("well typed: %t", ok))
	}
	ioctx.Println(ctx, r.name(sample.Name)+": "+verdict)

	declared, referenced := imp.Symbols(sample.Node)
	if len(declared) > 0 {
		ioctx.Println(ctx, "  declares:   "+strings.Join(declared, ", "))
	}
	if len(referenced) > 0 {
		ioctx.Println(ctx, "  references: "+strings.Join(referenced, ", "))
	}
	if types.Len() > 0 {
		ioctx.Println(ctx, "  types:      "+types.String())
	}
	return nil
}

func dumpNode(ctx context.Context, sample imp.Sample) {
	ioctx.Println(ctx, sample.Name+":")
	ioctx.Println(ctx, pretty.Sprint(sample.Node))
}
