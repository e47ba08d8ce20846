package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/reelbite/reelbite/internal/api"
	"github.com/reelbite/reelbite/internal/comments"
	"github.com/reelbite/reelbite/internal/config"
	"github.com/reelbite/reelbite/internal/feed"
	"github.com/reelbite/reelbite/internal/offline"
	"github.com/reelbite/reelbite/internal/overlay"
	"github.com/reelbite/reelbite/internal/platform"
	"github.com/reelbite/reelbite/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "app.reelbite.client"
	AppName = "ReelBite"

	WindowWidth  = 430
	WindowHeight = 780

	MaxParallelOfflineFetches = 2
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)

	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewReelTheme(settings.GetThemePreference))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	offlineDir, err := platform.DefaultOfflineDir()
	if err != nil {
		fmt.Printf("failed to ensure offline dir: %v\n", err)
	}

	// Initialize services
	toaster := ui.NewToaster(myWindow)
	overlayStore := overlay.NewStore()
	client := api.NewClient(settings.GetAPIBase())
	feedSvc := feed.NewService(client, overlayStore, settings, toaster)
	thread := comments.NewThread(client, toaster)
	offlineSvc := offline.NewService(offlineDir, MaxParallelOfflineFetches)

	// Create and setup UI
	root := ui.NewRootUI(myWindow, myApp, feedSvc, thread, overlayStore, offlineSvc, settings, toaster)
	root.LoadFeed()

	// A share link passed on the command line focuses its reel once loaded.
	if len(os.Args) > 1 {
		root.OpenDeepLink(os.Args[1])
	}

	myWindow.SetOnClosed(root.Close)

	// Show and run
	myWindow.ShowAndRun()
}
