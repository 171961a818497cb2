package main

import (
	"github.com/FrancoCastro1990/auto-rpg/internal/api"
	"github.com/FrancoCastro1990/auto-rpg/internal/constants"
	"github.com/FrancoCastro1990/auto-rpg/internal/logging"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := loadConfigOrExit(configPath())
	cat := loadCatalogOrExit(cfg.CatalogDir)
	repo := createRepositoryOrExit(dbPath(), cfg.Dungeons)

	handler := api.NewBattleHandler(repo, cat)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.Version)

		// Catalog data
		apiRoutes.GET(constants.RouteAbilities, handler.ListAbilities)
		apiRoutes.GET(constants.RouteJobs, handler.ListJobs)
		apiRoutes.GET(constants.RouteDungeons, handler.ListDungeons)

		// Players
		apiRoutes.POST(constants.RoutePlayers, handler.RegisterPlayer)
		apiRoutes.GET(constants.RoutePlayerByName, handler.GetPlayerStats)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)

		// Parties
		apiRoutes.POST(constants.RouteParties, handler.CreateParty)
		apiRoutes.GET(constants.RoutePartyByID, handler.GetParty)
		apiRoutes.GET(constants.RoutePartyBattles, handler.ListPartyBattles)

		// Battles
		apiRoutes.POST(constants.RouteBattles, handler.StartBattle)
		apiRoutes.GET(constants.RouteBattleByID, handler.GetBattle)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
