// Command simulate runs one battle offline, without the HTTP server or
// database: useful for balancing catalogs and debugging rule lists.
// It prints the battle result as JSON and the turn log as plain text.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/FrancoCastro1990/auto-rpg/internal/catalog"
	"github.com/FrancoCastro1990/auto-rpg/internal/config"
	"github.com/FrancoCastro1990/auto-rpg/internal/constants"
	"github.com/FrancoCastro1990/auto-rpg/internal/engine"
	"github.com/FrancoCastro1990/auto-rpg/internal/game"
	"github.com/FrancoCastro1990/auto-rpg/internal/logging"
	"github.com/FrancoCastro1990/auto-rpg/internal/util"
)

func main() {
	var (
		configPath  = flag.String("config", constants.DefaultConfigPath, "server configuration file")
		partyPath   = flag.String("party", "", "JSON file with an array of character specs")
		dungeonName = flag.String("dungeon", "", "dungeon name from the configuration")
		seed        = flag.Int64("seed", 1, "random seed (same seed reproduces the same battle)")
	)
	flag.Parse()
	if *partyPath == "" || *dungeonName == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logging.Fatal("invalid configuration", err, logging.Fields{"config_path": *configPath})
	}
	cat, err := catalog.Load(cfg.CatalogDir)
	if err != nil {
		logging.Fatal("failed to load catalogs", err, logging.Fields{"catalog_dir": cfg.CatalogDir})
	}

	var dungeon *game.Dungeon
	for i := range cfg.Dungeons {
		if cfg.Dungeons[i].Name == *dungeonName {
			dungeon = &cfg.Dungeons[i]
			break
		}
	}
	if dungeon == nil {
		logging.Fatal("dungeon not found in configuration", nil, logging.Fields{"dungeon": *dungeonName})
	}

	var specs []game.CharacterSpec
	b, err := os.ReadFile(*partyPath)
	if err == nil {
		err = json.Unmarshal(b, &specs)
	}
	if err != nil {
		logging.Fatal("failed to read party file", err, logging.Fields{"party": *partyPath})
	}

	var enemySpecs []game.EnemySpec
	if err := json.Unmarshal([]byte(dungeon.EnemiesJSON), &enemySpecs); err != nil {
		logging.Fatal("invalid dungeon enemy lineup", err, logging.Fields{"dungeon": dungeon.Name})
	}
	enemyLevel := int(math.Floor(float64(dungeon.MinLevel) * (1 + float64(dungeon.Difficulty)*0.2)))
	maxTurns := dungeon.MinLevel * 10

	rng := util.NewRand(*seed)
	factory := engine.NewFactory(cat, rng)
	allies := make([]*game.Combatant, 0, len(specs))
	for _, s := range specs {
		c, err := factory.CreateCharacter(s)
		if err != nil {
			logging.Fatal("failed to create character", err, logging.Fields{"name": s.Name})
		}
		allies = append(allies, c)
	}
	enemies, err := factory.CreateEnemiesFromBattle(enemySpecs, enemyLevel)
	if err != nil {
		logging.Fatal("failed to create enemies", err, nil)
	}

	battle := engine.NewBattle(maxTurns, rng, util.NewRand(*seed+1))
	if err := battle.Initialize(allies, enemies); err != nil {
		logging.Fatal("failed to initialize battle", err, nil)
	}
	result, err := battle.SimulateFullBattle()
	if err != nil {
		logging.Fatal("simulation failed", err, nil)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logging.Fatal("failed to encode result", err, nil)
	}
	fmt.Println(string(out))
	for _, rec := range battle.State().History {
		fmt.Printf("[turn %d] %s\n", rec.Turn, rec.Message)
	}
}
