package game

import "image/color"

// Tag classifies an entity for damage rules. Entities sharing a tag
// never damage each other; projectiles carry their owner's tag.
type Tag byte

const (
	TagPlayer   Tag = 'P'
	TagEnemy    Tag = 'e'
	TagAsteroid Tag = 'a'

	TagHomingDrop Tag = 'h'
	TagDamageDrop Tag = 'D'
	TagHealthDrop Tag = 'H'
	TagSpeedDrop  Tag = 'S'
	TagReloadDrop Tag = 'R'
)

// String returns the tag as a one letter string
func (t Tag) String() string {
	return string(rune(t))
}

// TagConfig holds drawing configuration for each tag
type TagConfig struct {
	Tag  Tag
	Glow color.NRGBA
}

var (
	// TagConfigs holds configuration for each tag
	TagConfigs = map[Tag]TagConfig{
		TagPlayer:     {Tag: TagPlayer, Glow: color.NRGBA{0, 200, 255, 60}},
		TagEnemy:      {Tag: TagEnemy, Glow: color.NRGBA{255, 0, 0, 60}},
		TagAsteroid:   {Tag: TagAsteroid, Glow: color.NRGBA{150, 150, 150, 20}},
		TagHomingDrop: {Tag: TagHomingDrop, Glow: color.NRGBA{240, 230, 120, 40}},
		TagDamageDrop: {Tag: TagDamageDrop, Glow: color.NRGBA{255, 0, 255, 40}},
		TagHealthDrop: {Tag: TagHealthDrop, Glow: color.NRGBA{0, 255, 0, 40}},
		TagSpeedDrop:  {Tag: TagSpeedDrop, Glow: color.NRGBA{0, 0, 255, 40}},
		TagReloadDrop: {Tag: TagReloadDrop, Glow: color.NRGBA{255, 160, 0, 40}},
	}
)

// GetTagConfig returns configuration for a tag
func GetTagConfig(tag Tag) TagConfig {
	if config, ok := TagConfigs[tag]; ok {
		return config
	}
	// Default fallback
	return TagConfig{
		Tag:  tag,
		Glow: color.NRGBA{255, 215, 0, 40},
	}
}

// GetOpposingTag returns the tag a combatant aims at
func GetOpposingTag(tag Tag) Tag {
	switch tag {
	case TagPlayer:
		return TagEnemy
	case TagEnemy:
		return TagPlayer
	default:
		return TagEnemy
	}
}
