package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/pennyflow/penny/internal/config"
	"github.com/pennyflow/penny/internal/model"
	"github.com/pennyflow/penny/internal/storage"
	"github.com/pennyflow/penny/internal/store"
)

// initStore opens the database and loads the application state. The returned
// closer shuts down the underlying adapter.
func initStore(ctx context.Context) (*store.Store, func() error, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	kv, err := storage.NewSQLiteKV(dbPath)
	if err != nil {
		return nil, nil, err
	}

	st := store.New(kv)
	if err := st.Init(ctx); err != nil {
		_ = kv.Close()
		return nil, nil, fmt.Errorf("failed to load data: %w", err)
	}

	return st, kv.Close, nil
}

// resolveCategory matches arg against category IDs first, then names
// (case-insensitive).
func resolveCategory(categories []model.Category, arg string) (*model.Category, error) {
	for _, cat := range categories {
		if cat.ID == arg {
			return &cat, nil
		}
	}
	for _, cat := range categories {
		if strings.EqualFold(cat.Name, arg) {
			return &cat, nil
		}
	}
	return nil, fmt.Errorf("unknown category %q (try 'penny categories list')", arg)
}
