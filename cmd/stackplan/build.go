package cmd

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stackplan/stackplan/config"
	"github.com/stackplan/stackplan/graph"
	"github.com/stackplan/stackplan/provider/aws"
	"github.com/stackplan/stackplan/resource"
	"github.com/stackplan/stackplan/secret"
	"github.com/stackplan/stackplan/storage"
	"github.com/stackplan/stackplan/storage/kvbackend"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var buildCommand = &cobra.Command{
	Use:   "build [file...]",
	Short: "Compile documents into construction plans",
	Long: `Build compiles one or more resource documents into construction plans.

Each file is compiled independently. Plans are printed to stdout as JSON, in
the order the files were given.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			args = []string{"config.yaml"}
		}

		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			log.Fatalf("Get verbose: %v", err)
		}
		save, err := cmd.Flags().GetBool("save")
		if err != nil {
			log.Fatalf("Get save: %v", err)
		}
		secretFlags, err := cmd.Flags().GetStringArray("secret")
		if err != nil {
			log.Fatalf("Get secrets: %v", err)
		}

		logCfg := zap.NewDevelopmentConfig()
		logCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
		if verbose {
			logCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		}
		logger, err := logCfg.Build()
		if err != nil {
			log.Fatalf("Build logger: %v", err)
		}

		secrets, err := secretSource(secretFlags)
		if err != nil {
			fatal(err)
		}

		reg := &resource.Registry{}
		aws.Register(reg)

		compiler := &graph.Compiler{
			Registry: reg,
			Secrets:  secrets,
			Logger:   logger,
		}

		ctx := signalContext(context.Background())

		plans := make([]*graph.Plan, len(args))
		g, gctx := errgroup.WithContext(ctx)
		for i, file := range args {
			i, file := i, file
			g.Go(func() error {
				doc, err := config.Load(file)
				if err != nil {
					return err
				}
				plan, err := compiler.Compile(gctx, doc)
				if err != nil {
					return errors.Wrap(err, file)
				}
				plans[i] = plan
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			fatal(err)
		}

		if save {
			if err := savePlans(ctx, plans); err != nil {
				fatal(err)
			}
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		for _, plan := range plans {
			if err := enc.Encode(plan); err != nil {
				fatal(err)
			}
		}
	},
}

func init() {
	buildCommand.Flags().Bool("save", false, "Save compiled plans to the local plan store")
	buildCommand.Flags().StringArray("secret", nil, "Secret as key=value, may be repeated")

	Stackplan.AddCommand(buildCommand)
}

// secretSource assembles the secret sources for a build: explicit key=value
// flags take precedence over STACKPLAN_* environment variables.
func secretSource(flags []string) (secret.Source, error) {
	static := secret.Static{}
	for _, kv := range flags {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return nil, errors.Errorf("invalid secret %q, must be key=value", kv)
		}
		static[parts[0]] = parts[1]
	}
	return secret.Chain{static, secret.Env{Prefix: "STACKPLAN"}}, nil
}

func savePlans(ctx context.Context, plans []*graph.Plan) error {
	backend, err := kvbackend.NewBolt()
	if err != nil {
		return errors.Wrap(err, "open plan store")
	}
	defer func() {
		if cerr := backend.Close(); cerr != nil {
			log.Printf("Close plan store: %v", cerr)
		}
	}()

	store := &storage.Plans{Backend: backend}
	for _, plan := range plans {
		if err := store.Put(ctx, plan); err != nil {
			return errors.Wrapf(err, "save plan %s", plan.ID)
		}
	}
	return nil
}
