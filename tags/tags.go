package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Canvas    = donburi.NewTag().SetName("Canvas")
)
