package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/prefabric/prefabric/internal/core/assets"
	"github.com/prefabric/prefabric/internal/core/commands"
	"github.com/prefabric/prefabric/internal/core/config"
	"github.com/prefabric/prefabric/internal/core/observability/log"
	"github.com/prefabric/prefabric/internal/core/prefab"
	"github.com/prefabric/prefabric/internal/core/registry"
	"github.com/prefabric/prefabric/internal/core/world"
	"github.com/prefabric/prefabric/pkg/concurrent"
	"github.com/prefabric/prefabric/pkg/sequence"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON or YAML config file")
	flag.Usage = usage
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error loading config:", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger := log.New(log.ParseLevel(cfg.LogLevel))

	reg := registry.New()
	w := world.New()
	world.RegisterStandard(reg)
	resolver := assets.NewMemResolver()
	commands.RegisterBuiltins(reg, resolver)
	loader := prefab.NewLoader(reg, prefab.NewDirSource(cfg.Root), logger)

	for _, path := range cfg.Preload {
		if _, err := loader.Load(path); err != nil {
			logger.Error("preload failed", log.String("path", path), log.Err(err))
			os.Exit(1)
		}
	}

	switch flag.Arg(0) {
	case "validate":
		if err := validate(cfg.Root, loader, logger); err != nil {
			os.Exit(1)
		}
	case "spawn":
		name := flag.Arg(1)
		if name == "" {
			usage()
			os.Exit(2)
		}
		if err := spawn(name, loader, w, logger); err != nil {
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: prefabric [-config file] <command>

commands:
  validate        parse every .prefab under the configured root
  spawn <path>    assemble one prefab into a fresh world and print it
`)
}

// validate parses every prefab under root in parallel, reporting each
// failure, and errors if any file failed.
func validate(root string, loader *prefab.Loader, logger log.Log) error {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".prefab") {
			rel, rerr := filepath.Rel(root, path)
			if rerr != nil {
				return rerr
			}
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		logger.Error("walking prefab root failed", log.String("root", root), log.Err(err))
		return err
	}

	err = concurrent.Concurrent(sequence.From(paths), func(path string) error {
		doc, lerr := loader.Load(path)
		if lerr != nil {
			logger.Error("invalid prefab", log.String("path", path), log.Err(lerr))
			return lerr
		}
		logger.Info("prefab ok",
			log.String("path", path),
			log.Int("steps", len(doc.Steps())),
			log.Uint64("fingerprint", doc.Fingerprint()),
		)
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("validated", log.Int("prefabs", len(paths)))
	return nil
}

// spawn assembles one prefab into a fresh entity and prints the resulting
// components.
func spawn(path string, loader *prefab.Loader, w *world.World, logger log.Log) error {
	e := w.Spawn()
	if err := loader.Spawn(path, e); err != nil {
		logger.Error("spawn failed", log.String("path", path), log.Err(err))
		return err
	}
	fmt.Printf("entity %s\n", e.ID())
	for _, name := range e.TypeNames() {
		comp, _ := e.Get(name)
		fmt.Printf("  %-14s %+v\n", name, comp)
	}
	return nil
}
