package main

// Application initialization only. All UI layout, components, and state
// management live in separate packages:
//
// Package structure:
// - models/     : Data structures (PickerConfig)
// - config/     : Configuration (verification, save and load picker config, version)
// - validation/ : Fail-fast checks for loaded configuration
// - picker/     : The color picker widget and its interaction core
// - ui/         : UI state management, theme constants and reusable components

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/carotkut94/SlideColorPicker/config"
	"github.com/carotkut94/SlideColorPicker/ui"
)

func main() {

	// Create a new Fyne application instance
	pickerApp := app.NewWithID("com.carotkut94.slidecolorpicker") // must match your AppMetadata.ID

	pickerMetadata := fyne.AppMetadata{
		ID:      "com.carotkut94.slidecolorpicker",
		Name:    "SlideColorPicker",
		Version: config.Version,
	}

	app.SetMetadata(pickerMetadata)

	// Create the main application window
	myWindow := pickerApp.NewWindow("SlideColorPicker")

	// -------------------------------------------------------------------------
	// FILE MENU WITH CONFIGURATION OPTION
	// -------------------------------------------------------------------------
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Configuration", func() {
			log.Println("[UI] configuration window opened (GUI)")
			ui.ShowConfigWindow(pickerApp)
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			log.Println("[UI] about dialog opened")
			ui.ShowAboutDialog(pickerApp)
		}),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, helpMenu)
	myWindow.SetMainMenu(mainMenu)

	// -------------------------------------------------------------------------
	// KEYBOARD SHORTCUTS
	// -------------------------------------------------------------------------
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] user closed application (ctrl + q)")
		pickerApp.Quit()
	})
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyComma,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] configuration window opened (ctrl + ,)")
		ui.ShowConfigWindow(pickerApp)
	})

	myWindow.SetCloseIntercept(func() {
		log.Println("[UI] user closed application (window close)")
		pickerApp.Quit()
	})

	// Set initial window size
	myWindow.Resize(fyne.NewSize(ui.DefaultWindowWidth, ui.DefaultWindowHeight))

	// Build the complete UI layout
	content := ui.BuildMainLayout(myWindow)
	myWindow.SetContent(content)

	// Show the window and run the event loop
	myWindow.ShowAndRun()
}
