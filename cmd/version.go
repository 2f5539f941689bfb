package cmd

// Version is the client version, set at build time via ldflags:
//
//	go build -ldflags "-X sensorq/cli/cmd.Version=1.2.3"
var Version = "0.0.0-dev"
