// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package encoder

// Concept is one axis of the shared concept space. Keywords are drawn from
// every category so that a book, a film, a song and a game about the same
// theme land on the same axis.
type Concept struct {
	Name     string
	Keywords []string
}

// DefaultLexicon is the built-in concept space.
var DefaultLexicon = []Concept{
	{Name: "fantasy", Keywords: []string{
		"fantasy", "magic", "magical", "wizard", "witch", "sorcery", "sorcerer",
		"dragon", "elf", "elves", "fairy", "myth", "mythical", "legend", "legendary",
		"enchanted", "kingdom", "sword", "quest",
	}},
	{Name: "science_fiction", Keywords: []string{
		"scifi", "science", "space", "spaceship", "galaxy", "galactic", "alien", "aliens",
		"robot", "android", "cyberpunk", "cyber", "future", "futuristic", "planet", "star",
		"stars", "interstellar", "technology", "time", "opera",
	}},
	{Name: "dystopia", Keywords: []string{
		"dystopia", "dystopian", "totalitarian", "surveillance", "apocalypse", "apocalyptic",
		"postapocalyptic", "rebellion", "oppression",
	}},
	{Name: "romance", Keywords: []string{
		"romance", "romantic", "love", "lovers", "heart", "wedding", "relationship",
		"passion", "marriage", "affair",
	}},
	{Name: "crime", Keywords: []string{
		"crime", "criminal", "gangster", "mafia", "mob", "detective", "murder", "heist",
		"noir", "police", "cop", "outlaw",
	}},
	{Name: "drama", Keywords: []string{
		"drama", "dramatic", "tragedy", "tragic", "family", "prison", "redemption", "hope",
		"struggle", "grief", "comingofage", "life", "novel",
	}},
	{Name: "adventure", Keywords: []string{
		"adventure", "adventures", "journey", "explore", "exploration", "expedition",
		"treasure", "epic", "western", "voyage", "wilderness", "open",
	}},
	{Name: "action", Keywords: []string{
		"action", "fight", "fighting", "combat", "battle", "war", "shooter", "hero",
		"heroes", "explosive", "martial", "soldier",
	}},
	{Name: "thriller", Keywords: []string{
		"thriller", "mystery", "suspense", "twist", "psychological", "mind", "bending",
		"conspiracy", "spy", "secret",
	}},
	{Name: "horror", Keywords: []string{
		"horror", "scary", "ghost", "haunted", "zombie", "vampire", "monster", "dark",
		"fear", "terror", "nightmare",
	}},
	{Name: "comedy", Keywords: []string{
		"comedy", "comedic", "funny", "humor", "humour", "satire", "parody", "quirky",
		"laugh", "witty", "silly",
	}},
	{Name: "history", Keywords: []string{
		"history", "historical", "classic", "period", "century", "american", "political",
		"politics", "ancient", "medieval", "empire",
	}},
	{Name: "rock", Keywords: []string{
		"rock", "guitar", "grunge", "metal", "punk", "band", "anthem",
		"riff", "roll",
	}},
	{Name: "pop", Keywords: []string{
		"pop", "dance", "disco", "hit", "catchy", "chart",
	}},
	{Name: "soulful", Keywords: []string{
		"ballad", "soul", "jazz", "blues", "peace", "emotional",
		"melancholy", "acoustic", "folk",
	}},
	{Name: "roleplaying", Keywords: []string{
		"rpg", "roleplaying", "role", "character", "characters", "party",
		"level", "leveling", "choices",
	}},
	{Name: "puzzle", Keywords: []string{
		"puzzle", "puzzles", "logic", "brain", "riddle", "clever",
		"innovative",
	}},
	{Name: "arcade", Keywords: []string{
		"platformer", "platform", "arcade", "jump", "retro", "pixel",
	}},
	{Name: "creativity", Keywords: []string{
		"sandbox", "creative", "create", "build", "building", "craft", "crafting",
		"block", "blocks", "survival",
	}},
	{Name: "philosophy", Keywords: []string{
		"philosophy", "philosophical", "spiritual", "meaning", "destiny", "dream",
		"dreams", "existential", "reality",
	}},
	{Name: "youth", Keywords: []string{
		"school", "student", "teen", "teenage", "young", "youth", "childhood", "kids",
		"growing",
	}},
}
