package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/zboralski/tarsier/internal/bindings/all"
	"github.com/zboralski/tarsier/internal/caller"
	"github.com/zboralski/tarsier/internal/emulator"
	"github.com/zboralski/tarsier/internal/jni"
	glog "github.com/zboralski/tarsier/internal/log"
	"github.com/zboralski/tarsier/internal/plan"
	"github.com/zboralski/tarsier/internal/script"
	"github.com/zboralski/tarsier/internal/trace"
	"github.com/zboralski/tarsier/internal/ui/render"
)

var (
	verbose bool
	quiet   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tarsier",
		Short: "Dispatch static Java methods through an emulated JNI environment",
		Long: `Tarsier installs a fake JNI function table in an emulated ARM64 address
space and dispatches static Java method calls through it. Class and method
resolution go through Go-backed bindings; every call travels the real
vtable ABI, so signatures, dispatch and conversions are exercised end to
end.

Examples:
  tarsier run plan.yaml               # Run a declarative call plan
  tarsier script probe.js             # Drive the harness from JavaScript
  tarsier classes                     # List bound classes and methods`,
		DisableFlagsInUseLine: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose debug output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet mode (report only)")

	runCmd := &cobra.Command{
		Use:   "run <plan.yaml>",
		Short: "Run a declarative call plan",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlan,
	}

	scriptCmd := &cobra.Command{
		Use:   "script <file.js>",
		Short: "Drive the harness from a JavaScript file",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}

	classesCmd := &cobra.Command{
		Use:   "classes",
		Short: "List bound classes and methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(render.Classes(jni.DefaultRegistry))
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, scriptCmd, classesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup builds the emulated environment, the caller and the trace session.
func setup() (*caller.Caller, *caller.CollectReporter, *trace.Session, error) {
	glog.Init(verbose)

	emu, err := emulator.New()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create emulator: %w", err)
	}

	session := trace.NewSession()
	glog.L.SetOnTrace(session.Record)

	env := jni.NewEnv(emu, jni.DefaultRegistry)
	env.Install()

	collect := &caller.CollectReporter{}
	rep := caller.MultiReporter{collect, caller.LogReporter{}}
	return caller.New(env, rep), collect, session, nil
}

func runPlan(cmd *cobra.Command, args []string) error {
	p, err := plan.Load(args[0])
	if err != nil {
		return err
	}

	c, collect, session, err := setup()
	if err != nil {
		return err
	}
	defer c.Env().Emulator().Close()

	results, err := p.Run(c)
	if err != nil {
		return err
	}

	report := render.Report{
		Title:       p.Name,
		Results:     results,
		Diagnostics: collect.Messages(),
		Session:     session,
	}
	fmt.Print(report.Render())
	return nil
}

func runScript(cmd *cobra.Command, args []string) error {
	c, collect, session, err := setup()
	if err != nil {
		return err
	}
	defer c.Env().Emulator().Close()

	eng := script.New(c)
	if _, err := eng.RunFile(args[0]); err != nil {
		return err
	}

	if !quiet {
		report := render.Report{
			Title:       args[0],
			Diagnostics: collect.Messages(),
			Session:     session,
		}
		fmt.Print(report.Render())
	}
	return nil
}
