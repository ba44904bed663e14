package constants

// FixedMaxFret bounds how far up the neck the search looks.
const FixedMaxFret = 7

const CatalogFilename = "catalog.dat"

const DefaultConfigPath = "fretdex.yaml"

// environment variables that override the config file
const (
	EnvIndexPath      = "INDEX_PATH"
	EnvListenAddr     = "LISTEN_ADDR"
	EnvDynamoEndpoint = "DYNAMO_ENDPOINT"
)
