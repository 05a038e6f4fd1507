// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package main runs a small workload that shows how the current profiler
// follows goroutines forked from a session.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/pion/profiler"
	"github.com/pkg/profile"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	name := flag.String("name", "", "Session name, defaults to the configured default name")
	workers := flag.Int("workers", 4, "Number of forked workers")
	store := flag.String("store", "", "Store mode: task or request (overrides the config file)")
	pprofMode := flag.String("pprof", "", "Capture a process profile: cpu, mem or block")
	flag.Parse()

	if stopper := startProcessProfile(*pprofMode); stopper != nil {
		defer stopper.Stop()
	}

	config := &profiler.FileConfig{}
	if *configPath != "" {
		var err error
		if config, err = profiler.LoadConfigFile(*configPath); err != nil {
			log.Panicf("Failed to load config: %s", err)
		}
	}
	if *store != "" {
		config.Store = profiler.StoreMode(*store)
	}

	providerConfig, storage, err := config.ProviderConfig()
	if err != nil {
		log.Panicf("Invalid config: %s", err)
	}
	provider, err := profiler.NewProvider(providerConfig)
	if err != nil {
		log.Panicf("Failed to create provider: %s", err)
	}

	ctx, session := provider.Start(context.Background(), *name)
	log.Printf("Started session %s", session)

	group, ctx := provider.NewGroup(ctx)
	for i := 0; i < *workers; i++ {
		worker := fmt.Sprintf("%s/worker-%d", session.Name(), i)
		group.Go(func(ctx context.Context) error {
			log.Printf("%s inherited %s", worker, provider.Current(ctx))

			ctx, _ = provider.Start(ctx, worker)
			time.Sleep(10 * time.Millisecond)

			return <-provider.StopAsync(ctx, true)
		})
	}
	if err = group.Wait(); err != nil {
		log.Panicf("Worker failed: %s", err)
	}

	log.Printf("Current session after workers: %s", provider.Current(ctx))
	if err = <-provider.StopAsync(ctx, false); err != nil {
		log.Panicf("Failed to save session: %s", err)
	}

	for _, saved := range storage.List() {
		log.Printf("Saved %s in %s", saved, saved.Stopped().Sub(saved.Started()))
	}
}

type stopper interface {
	Stop()
}

func startProcessProfile(mode string) stopper {
	switch mode {
	case "":
		return nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."))
	case "block":
		return profile.Start(profile.BlockProfile, profile.ProfilePath("."))
	default:
		log.Panicf("Unknown pprof mode %q", mode)

		return nil
	}
}
