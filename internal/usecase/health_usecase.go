package usecase

import (
	"context"
	"fmt"
	"portfolio-backend/internal/domain"
)

const (
	maxListedCollections = 10
	maxErrorLength       = 50
)

type healthUsecase struct {
	store domain.DocumentStore
	env   domain.StoreEnv
}

func NewHealthUsecase(store domain.DocumentStore, env domain.StoreEnv) domain.HealthUsecase {
	return &healthUsecase{store: store, env: env}
}

func (u *healthUsecase) Diagnose(ctx context.Context) (d domain.Diagnostics) {
	d = domain.Diagnostics{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	// A misbehaving store must not take the diagnostics endpoint down with it.
	defer func() {
		if r := recover(); r != nil {
			d.Database = "❌ Error: " + truncate(fmt.Sprint(r), maxErrorLength)
			if d.Collections == nil {
				d.Collections = []string{}
			}
		}
	}()

	if u.store == nil {
		d.Database = "⚠️  Available but not initialized"
		return d
	}

	d.Database = "✅ Available"
	d.DatabaseURL = setStatus(u.env.URLSet)
	if name := u.store.Name(); name != "" {
		d.DatabaseName = &name
	} else {
		d.DatabaseName = setStatus(u.env.NameSet)
	}
	d.ConnectionStatus = "Connected"

	names, err := u.store.ListCollectionNames(ctx)
	if err != nil {
		d.Database = "⚠️  Connected but Error: " + truncate(err.Error(), maxErrorLength)
		return d
	}
	if len(names) > maxListedCollections {
		names = names[:maxListedCollections]
	}
	if names != nil {
		d.Collections = names
	}
	d.Database = "✅ Connected & Working"
	return d
}

func setStatus(set bool) *string {
	s := "❌ Not Set"
	if set {
		s = "✅ Set"
	}
	return &s
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
