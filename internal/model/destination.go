package model

// Destinations описывает справочник направлений: страна -> город -> список отелей.
type Destinations map[string]map[string][]string
