package config

import "strings"

// AppVersion is the version of the tool.
var AppVersion string // Or get it from version.txt during build

// AppName is the name of the tool.
const AppName = "Poketerm"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// DefaultDarkThreshold is the luminance above which an image counts as bright
// and gets a dark foreground.
const DefaultDarkThreshold = 0.5

// DataSubDir is the sub directory holding the catalog data file.
const DataSubDir = "Data"

// ImagesSubDir is the sub directory holding the catalog images.
const ImagesSubDir = "Images"

// CatalogFile is the name of the catalog data file inside DataSubDir.
const CatalogFile = "pokemon.txt"
