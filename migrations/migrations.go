// Package migrations embeds the goose migrations for each corpus store.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Postgres returns the migrations for the PostgreSQL corpus.
func Postgres() fs.FS {
	return sub("postgres")
}

// SQLite returns the migrations for the embedded SQLite corpus.
func SQLite() fs.FS {
	return sub("sqlite")
}

func sub(dir string) fs.FS {
	f, err := fs.Sub(files, dir)
	if err != nil {
		// dir is a compile-time constant covered by the embed pattern.
		panic(err)
	}
	return f
}
