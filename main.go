package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"jiaming2012/payout-report/config"
	"jiaming2012/payout-report/report"
	"jiaming2012/payout-report/service"
	"jiaming2012/payout-report/sftp"
)

type options struct {
	kind       report.Kind
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "payout-report FILE [FILE...] --report payout",
		Short: "Generate reports from employee timesheet files",
		Long: `Reads comma separated timesheet files (header: name, department, hours_worked,
hourly_rate) and prints a payout report grouped by department.

Inputs prefixed with sftp: are downloaded from the server in the config file.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			if err = setupLogging(cmd.ErrOrStderr(), cfg, opts.verbose); err != nil {
				return err
			}

			return run(cmd.OutOrStdout(), opts.kind, cfg, args)
		},
	}

	cmd.Flags().Var(&opts.kind, "report", fmt.Sprintf("type of report to generate %v", report.Kinds()))
	cmd.Flags().StringVar(&opts.configPath, "config", "", "optional YAML config file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	if err := cmd.MarkFlagRequired("report"); err != nil {
		panic(err)
	}

	return cmd
}

func setupLogging(w io.Writer, cfg config.Config, verbose bool) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	if verbose {
		level = log.DebugLevel
	}

	log.SetOutput(w)
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	return nil
}

func hasRemoteInputs(paths []string) bool {
	for _, path := range paths {
		if service.IsRemote(path) {
			return true
		}
	}

	return false
}

// openSources connects to sftp only when an input actually needs it.
func openSources(cfg config.Config, paths []string) (service.Sources, func(), error) {
	sources := service.Sources{Local: service.LocalFiles{}}

	if cfg.SFTP == nil || !hasRemoteInputs(paths) {
		return sources, func() {}, nil
	}

	sftpConfig := sftp.Config{
		Username:   cfg.SFTP.Username,
		Password:   cfg.SFTP.Password,
		Server:     cfg.SFTP.Server,
		KnownHosts: cfg.SFTP.KnownHostsFile,
		Timeout:    cfg.SFTP.Timeout,
	}

	if cfg.SFTP.PrivateKeyFile != "" {
		pk, err := os.ReadFile(cfg.SFTP.PrivateKeyFile)
		if err != nil {
			return sources, nil, fmt.Errorf("failed to read private key: %w", err)
		}
		sftpConfig.PrivateKey = string(pk)
	}

	client, err := sftp.New(sftpConfig)
	if err != nil {
		return sources, nil, err
	}

	sources.Remote = service.OpenerFunc(client.Download)

	return sources, client.Close, nil
}

func writeExports(cfg config.Config, out report.Output) error {
	if cfg.Output.PDF != "" {
		if err := report.WritePDFFile(out.Text, cfg.Output.PDF); err != nil {
			return err
		}
		log.Infof("wrote %s", cfg.Output.PDF)
	}

	if cfg.Output.CSV == "" {
		return nil
	}

	f, err := os.Create(cfg.Output.CSV)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", cfg.Output.CSV, err)
	}

	if err = out.Entries.ToCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to export entries: %w", err)
	}

	if err = f.Close(); err != nil {
		return err
	}

	log.Infof("wrote %s", cfg.Output.CSV)

	return nil
}

func run(out io.Writer, kind report.Kind, cfg config.Config, paths []string) error {
	logger := log.WithField("run", uuid.NewString())

	sources, closeSources, err := openSources(cfg, paths)
	if err != nil {
		return err
	}
	defer closeSources()

	records, err := service.LoadRecords(sources, paths)
	if err != nil {
		return err
	}

	logger.Debugf("loaded %d records from %d files", len(records), len(paths))

	output, err := report.Generate(kind, records)
	if err != nil {
		return err
	}

	if err = writeExports(cfg, output); err != nil {
		return err
	}

	fmt.Fprintln(out, output.Text)

	logger.Debugf("Finished %s report", kind)

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
