// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package catalog

import "context"

// Default category names of the built-in catalog.
const (
	Movies Category = "movies"
	Books  Category = "books"
	Songs  Category = "songs"
	Games  Category = "games"
)

// SeedSource serves the built-in catalog used when no catalog file is configured.
type SeedSource struct{}

// Name implements Source.
func (SeedSource) Name() string {
	return "seed"
}

// Fetch implements Source. Every call returns a fresh document.
func (SeedSource) Fetch(_ context.Context) (*Document, error) {
	return &Document{Categories: []CategoryItems{
		{Name: Movies, Items: []Item{
			seed("movie_1", "The Lord of the Rings", "Fantasy", 2001, 8.9, "Epic fantasy adventure"),
			seed("movie_2", "Harry Potter", "Fantasy", 2001, 7.6, "Magical school adventure"),
			seed("movie_3", "The Matrix", "Sci-Fi", 1999, 8.7, "Cyberpunk action thriller"),
			seed("movie_4", "Inception", "Sci-Fi", 2010, 8.8, "Mind-bending thriller"),
			seed("movie_5", "The Shawshank Redemption", "Drama", 1994, 9.3, "Prison drama about hope"),
			seed("movie_6", "Pulp Fiction", "Crime", 1994, 8.9, "Quirky crime anthology"),
			seed("movie_7", "The Godfather", "Crime", 1972, 9.2, "Epic crime drama"),
			seed("movie_8", "Titanic", "Romance", 1997, 7.9, "Epic romance disaster"),
		}},
		{Name: Books, Items: []Item{
			seed("book_1", "The Hobbit", "Fantasy", 1937, 4.3, "Fantasy adventure novel"),
			seed("book_2", "1984", "Sci-Fi", 1949, 4.2, "Dystopian political fiction"),
			seed("book_3", "The Great Gatsby", "Drama", 1925, 3.9, "American classic novel"),
			seed("book_4", "To Kill a Mockingbird", "Drama", 1960, 4.3, "Coming-of-age story"),
			seed("book_5", "Pride and Prejudice", "Romance", 1813, 4.3, "Classic romance novel"),
			seed("book_6", "The Catcher in the Rye", "Drama", 1951, 3.8, "Coming-of-age novel"),
			seed("book_7", "Brave New World", "Sci-Fi", 1932, 3.9, "Dystopian science fiction"),
			seed("book_8", "The Alchemist", "Fantasy", 1988, 3.9, "Philosophical novel"),
		}},
		{Name: Songs, Items: []Item{
			seed("song_1", "Bohemian Rhapsody", "Rock", 1975, 4.8, "Epic rock opera"),
			seed("song_2", "Imagine", "Pop", 1971, 4.7, "Peace anthem"),
			seed("song_3", "Hotel California", "Rock", 1976, 4.6, "Classic rock ballad"),
			seed("song_4", "Stairway to Heaven", "Rock", 1971, 4.7, "Epic rock masterpiece"),
			seed("song_5", "Billie Jean", "Pop", 1983, 4.5, "Pop dance hit"),
			seed("song_6", "Like a Rolling Stone", "Rock", 1965, 4.6, "Folk rock classic"),
			seed("song_7", "Smells Like Teen Spirit", "Rock", 1991, 4.5, "Grunge anthem"),
			seed("song_8", "Yesterday", "Pop", 1965, 4.4, "Beatles classic"),
		}},
		{Name: Games, Items: []Item{
			seed("game_1", "The Legend of Zelda", "Adventure", 1986, 4.8, "Classic adventure game"),
			seed("game_2", "Final Fantasy VII", "RPG", 1997, 4.7, "Epic RPG adventure"),
			seed("game_3", "Super Mario Bros", "Platformer", 1985, 4.6, "Classic platformer"),
			seed("game_4", "Tetris", "Puzzle", 1984, 4.5, "Classic puzzle game"),
			seed("game_5", "Minecraft", "Sandbox", 2011, 4.7, "Creative sandbox game"),
			seed("game_6", "The Witcher 3", "RPG", 2015, 4.8, "Epic fantasy RPG"),
			seed("game_7", "Portal", "Puzzle", 2007, 4.6, "Innovative puzzle game"),
			seed("game_8", "Red Dead Redemption 2", "Adventure", 2018, 4.7, "Western adventure game"),
		}},
	}}, nil
}

func seed(id, title, genre string, year int, rating float64, description string) Item {
	return Item{
		ID:          id,
		Title:       title,
		Genre:       genre,
		Year:        &year,
		Rating:      &rating,
		Description: description,
	}
}
