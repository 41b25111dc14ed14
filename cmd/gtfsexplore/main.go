package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rmrobinson/gtfs-explore/explore"
	"github.com/rmrobinson/gtfs-explore/gtfs"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	envVarFeedURL  = "FEED_URL"
	envVarFeedPath = "FEED_PATH"

	defaultFeedURL = "https://cdn.mbta.com/MBTA_GTFS.zip"
)

func main() {
	viper.SetEnvPrefix("GTFSEXPLORE")
	viper.BindEnv(envVarFeedURL)
	viper.BindEnv(envVarFeedPath)
	viper.SetDefault(envVarFeedURL, defaultFeedURL)

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	loader := gtfs.NewLoader(logger).WithHooks(gtfs.Hooks{
		DownloadProgress: func(bytes int) {
			fmt.Fprintf(os.Stderr, "\rDownloaded %d bytes", bytes)
		},
		TableLoaded: func(table string, records int) {
			fmt.Fprintf(os.Stderr, "Loaded %s: %d records\n", table, records)
		},
	})

	var schedule *gtfs.Schedule
	if path := viper.GetString(envVarFeedPath); path != "" {
		schedule, err = loader.LoadFromFSPath(context.Background(), path)
	} else {
		url := viper.GetString(envVarFeedURL)
		schedule, err = loader.LoadFromURL(context.Background(), url)
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		logger.Fatal("cannot run without feed",
			zap.Error(err),
		)
	}

	root := explore.NewRootNode(schedule)
	interpreter := explore.NewInterpreter(os.Stdout)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := interpreter.Interpret(root, line); err != nil {
			fmt.Println(err)
		}
	}
}
