package constants

// EnvLocal is the environment name used on developer machines.
const EnvLocal = "local"
