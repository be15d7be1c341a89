package cmd

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/networkgym/netgym-go/netgym"
	"github.com/networkgym/netgym-go/netgym/agent"
	"github.com/networkgym/netgym-go/netgym/transport"
)

// historyTableRows is how many recent steps the final report shows.
const historyTableRows = 20

// runCmd connects to the gateway and drives the control loop using
// parameters from CLI flags and the optional config file.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the RL control loop against a simulator gateway",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := buildConfig(cmd)
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		adapter, err := netgym.NewAdapter(cfg)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		ag, err := agent.New(cfg.RLConfig.Agent, adapter.ActionSpace(), cfg.RLConfig.Seed)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		logrus.Infof("env=%s agent=%s action space %s, observation space %s",
			adapter.Name(), cfg.RLConfig.Agent, adapter.ActionSpace(), adapter.ObservationSpace())

		conn, err := transport.Dial(cfg.EnvConfig.Address, cfg.EnvConfig.ClientID, cfg.EnvConfig.Env)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		env := netgym.NewEnv(adapter, conn)
		defer env.Close()

		runLoop(env, ag, cfg.EnvConfig.Steps)

		fmt.Println(netgym.RenderStepHistory(adapter.History(), historyTableRows))
		logrus.Info("Session complete.")
	},
}

// runLoop drives reset + steps. A division-by-zero reward (idle interval
// in the ts variant) is logged and treated as zero; any other error ends
// the session.
func runLoop(env *netgym.Env, ag agent.Agent, steps int) {
	obs, err := env.Reset()
	if err != nil {
		logrus.Fatalf("%v", err)
	}

	reward := 0.0
	for step := 0; step < steps; step++ {
		action := ag.Act(obs, reward)
		nextObs, nextReward, done, err := env.Step(action)
		if errors.Is(err, netgym.ErrDivisionByZero) {
			logrus.Warnf("[step %d] %v", step, err)
			nextReward = 0
		} else if err != nil {
			logrus.Errorf("[step %d] %v", step, err)
			return
		}
		if done {
			logrus.Infof("[step %d] simulator ended the session", step)
			return
		}
		obs, reward = nextObs, nextReward
		logrus.Infof("[step %d] action=%v reward=%.4f", step, action, reward)
	}
}

// buildConfig merges the optional config file with CLI flags; explicitly
// set flags win.
func buildConfig(cmd *cobra.Command) *netgym.Config {
	cfg := &netgym.Config{}
	if configPath != "" {
		loaded, err := netgym.LoadConfig(configPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("env") || cfg.EnvConfig.Env == "" {
		cfg.EnvConfig.Env = envName
	}
	if cmd.Flags().Changed("address") || cfg.EnvConfig.Address == "" {
		cfg.EnvConfig.Address = address
	}
	if cmd.Flags().Changed("client-id") {
		cfg.EnvConfig.ClientID = clientID
	}
	if cmd.Flags().Changed("steps") || cfg.EnvConfig.Steps == 0 {
		cfg.EnvConfig.Steps = steps
	}
	if cmd.Flags().Changed("agent") || cfg.RLConfig.Agent == "" {
		cfg.RLConfig.Agent = agentName
	}
	if cmd.Flags().Changed("seed") || cfg.RLConfig.Seed == 0 {
		cfg.RLConfig.Seed = seed
	}
	return cfg
}
