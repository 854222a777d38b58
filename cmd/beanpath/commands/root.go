package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"beanpath/internal/config"
	"beanpath/internal/logger"
	"beanpath/navigator"
	"beanpath/reflector"
)

// app is the state shared by all commands of one invocation.
type app struct {
	configPath string
	format     string
	camelCase  bool
	logLevel   string

	cfg        *config.Config
	logger     *zap.SugaredLogger
	reflectors *reflector.DefaultFactory
}

// NewRootCmd builds the beanpath command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop().Sugar()}

	root := &cobra.Command{
		Use:   "beanpath",
		Short: "Navigate documents and Go types with property paths",
		Long: `beanpath - property path navigation and accessor checking.

Paths are dot separated, with optional indexes: "order.items[0].price",
"notes[gift]", "[2].name". Missing intermediate values are created on set.

Available commands:
  get     - Print the value at a path
  set     - Write a value at a path
  names   - List the readable properties at a path
  inspect - Report accessor bindings and conflicts of Go types

Examples:
  beanpath get order.yaml customer.address.city
  beanpath set order.yaml 'items[0].price' 12.5 --write
  beanpath names order.json items[0]
  beanpath inspect ./store Order`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: ./beanpath.yaml)")
	root.PersistentFlags().StringVarP(&a.format, "output", "o", "", "Output format: yaml or json")
	root.PersistentFlags().BoolVar(&a.camelCase, "camel-case", false, "Ignore '_', '-' and ' ' in property names")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(
		newGetCmd(a),
		newSetCmd(a),
		newNamesCmd(a),
		newInspectCmd(a),
	)

	return root
}

// setup loads the configuration and builds the logger and the reflector cache.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	overrides := map[string]any{}

	flags := cmd.Flags()
	if flags.Changed("output") {
		overrides["output.format"] = a.format
	}

	if flags.Changed("camel-case") {
		overrides["lookup.camel_case"] = a.camelCase
	}

	if flags.Changed("log-level") {
		overrides["log.level"] = a.logLevel
	}

	cfg, err := config.Load(a.configPath, overrides)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = log
	a.reflectors = reflector.NewFactory(
		reflector.WithLogger(log.Named("reflector")),
		reflector.WithCacheEnabled(cfg.Cache.Enabled),
	)

	log.Debugw("Configuration loaded",
		"cache", cfg.Cache.Enabled,
		"camel_case", cfg.Lookup.CamelCase,
		"output", cfg.Output.Format)

	return nil
}

// navigate wraps doc, a pointer to a decoded document.
func (a *app) navigate(doc *any) (*navigator.Navigator, error) {
	return navigator.New(doc, a.reflectors, navigator.WithLogger(a.logger.Named("navigator")))
}

// resolve maps path to a known property path when camel-case lookup is on.
func (a *app) resolve(nav *navigator.Navigator, path string) string {
	if !a.cfg.Lookup.CamelCase {
		return path
	}

	if found, ok := nav.FindProperty(path, true); ok {
		return found
	}

	return path
}
