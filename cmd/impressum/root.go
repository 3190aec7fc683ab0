package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/penshort/impressum/internal/config"
	"github.com/penshort/impressum/internal/impressum"
	"github.com/penshort/impressum/internal/logging"
)

const rootLong = `Reads the contact email, phone and name from the files named by
IMPRESSUM_EMAIL_FILE, IMPRESSUM_PHONE_FILE and IMPRESSUM_NAME_FILE, substitutes
them (plain and reversed) into IMPRESSUM_TEMPLATE_FILE and writes the result to
IMPRESSUM_OUTPUT_FILE (default ` + config.DefaultOutputFile + `) with mode 0644.`

// app carries state shared between the command and the exit path.
type app struct {
	logger *slog.Logger
	output string
	dryRun bool
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{
		// Used until configuration is loaded.
		logger: logging.NewWithWriter(stderr, &config.Config{}),
	}

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		a.logger.Error("impressum generation failed",
			slog.String("kind", string(impressum.KindOf(err))),
			slog.String("error", err.Error()),
		)
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "impressum",
		Short:         "Generate the impressum page from a template",
		Long:          rootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd)
		},
	}

	cmd.Flags().StringVarP(&a.output, "output", "o", "", "Output file (overrides IMPRESSUM_OUTPUT_FILE)")
	cmd.Flags().BoolVar(&a.dryRun, "dry-run", false, "Print the document to stdout instead of writing it")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *app) generate(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return impressum.Wrap(impressum.KindConfig, "load config", "", err)
	}
	if a.output != "" {
		cfg.OutputFile = a.output
	}

	a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), cfg)

	gen := impressum.New(impressum.Options{
		Contact: impressum.ContactFiles{
			Email: cfg.EmailFile,
			Phone: cfg.PhoneFile,
			Name:  cfg.NameFile,
		},
		TemplateFile: cfg.TemplateFile,
		OutputFile:   cfg.OutputFile,
	}, a.logger)

	if a.dryRun {
		doc, _, err := gen.Render()
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), doc)
		return err
	}

	res, err := gen.Generate()
	if err != nil {
		return err
	}

	a.logger.Info("generated impressum",
		slog.String("path", res.OutputFile),
		slog.Int("bytes", res.Bytes),
		slog.Int("missing_placeholders", len(res.Missing)),
	)
	return nil
}
