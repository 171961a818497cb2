package constants

// Centralized constants for env keys, routes and API messages.
const (
	// Environment variable keys
	EnvConfigPath = "AUTORPG_CONFIG"
	EnvDBPath     = "AUTORPG_DB"

	// Defaults used when the env vars are unset
	DefaultConfigPath = "./auto_rpg_config.json"
	DefaultDBPath     = "./data/auto_rpg.db"
)

// Routes used by the backend router
const (
	RouteAPIPrefix    = "/api"
	RouteVersion      = "/version"
	RouteAbilities    = "/abilities"
	RouteJobs         = "/jobs"
	RouteDungeons     = "/dungeons"
	RouteLeaderboard  = "/leaderboard"
	RoutePlayers      = "/players"
	RoutePlayerByName = "/players/:username"
	RouteParties      = "/parties"
	RoutePartyByID    = "/parties/:partyID"
	RoutePartyBattles = "/parties/:partyID/battles"
	RouteBattles      = "/battles"
	RouteBattleByID   = "/battles/:battleID"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyDetails = "details"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest = "Invalid request"

	ErrInvalidPlayerName      = "Username must be 1-32 characters"
	ErrPlayerAlreadyExists    = "Player already exists"
	ErrPlayerNotFound         = "Player not found"
	ErrFailedCreatePlayer     = "Failed to create player"
	ErrFailedFetchStats       = "Failed to fetch stats"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"

	ErrInvalidPartyID    = "Invalid party ID"
	ErrPartyNotFound     = "Party not found"
	ErrPartyNameExceeds  = "Party name exceeds 32 characters"
	ErrFailedCreateParty = "Failed to create party"
	ErrFailedFetchParty  = "Failed to fetch party"

	ErrFailedFetchDungeons = "Failed to fetch dungeons"

	ErrInvalidBattleID     = "Invalid battle ID"
	ErrBattleNotFound      = "Battle not found"
	ErrFailedRunBattle     = "Failed to run battle"
	ErrFailedFetchBattle   = "Failed to fetch battle"
	ErrFailedFetchCatalogs = "Failed to fetch catalog entries"
)

// Logging field names
const (
	LogFieldAddr      = "addr"
	LogFieldPartyID   = "party_id"
	LogFieldDungeonID = "dungeon_id"
	LogFieldBattleID  = "battle_id"
	LogFieldPlayerID  = "player_id"
	LogFieldSeed      = "seed"
)
