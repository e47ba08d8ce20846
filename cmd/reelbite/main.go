package main

import (
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

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("app.reelbite.client")

	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewReelTheme(settings.GetThemePreference))

	myWindow := myApp.NewWindow("ReelBite")
	myWindow.Resize(fyne.NewSize(430, 780))

	offlineDir, _ := platform.DefaultOfflineDir()

	toaster := ui.NewToaster(myWindow)
	overlayStore := overlay.NewStore()
	client := api.NewClient(settings.GetAPIBase())
	feedSvc := feed.NewService(client, overlayStore, settings, toaster)
	thread := comments.NewThread(client, toaster)
	offlineSvc := offline.NewService(offlineDir, 2)

	root := ui.NewRootUI(myWindow, myApp, feedSvc, thread, overlayStore, offlineSvc, settings, toaster)
	root.LoadFeed()
	myWindow.SetOnClosed(root.Close)

	myWindow.ShowAndRun()
}
