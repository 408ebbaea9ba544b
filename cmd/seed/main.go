// Command seed populates the mechanics table with randomized sample
// listings and prints the resulting catalog.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/openwrench/mechanic-review/internal/config"
	"github.com/openwrench/mechanic-review/internal/database"
	"github.com/openwrench/mechanic-review/internal/model"
	"github.com/openwrench/mechanic-review/internal/repository"
)

var (
	cities = []string{"Springfield", "Shelbyville", "Ogdenville", "North Haverbrook"}
	states = []string{"IL", "OH", "NV", "MA"}

	specialtyPool = []string{
		"Oil Change", "Tire Rotation", "Brake Repair", "Engine Diagnostics",
		"Transmission Service", "Air Conditioning", "Exhaust Systems", "Suspension",
	}
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(database.Config{
		User:            cfg.DBUser,
		Password:        cfg.DBPass,
		Host:            cfg.DBHost,
		Port:            cfg.DBPort,
		Name:            cfg.DBName,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	mechanics := repository.NewMechanicRepo(db)

	log.Info().Msg("seeding 10 random mechanics")
	for i := 0; i < 10; i++ {
		m := randomMechanic(i)
		created, err := mechanics.Create(ctx, m)
		if err != nil {
			log.Error().Err(err).Str("name", m.Name).Msg("create mechanic failed")
			continue
		}
		log.Info().Str("name", created.Name).Str("id", created.ID).Msg("created mechanic")
	}

	all, err := mechanics.Search(ctx, "", "", "", "")
	if err != nil {
		log.Fatal().Err(err).Msg("listing mechanics failed")
	}
	for i, m := range all {
		fmt.Printf("%d. %s (%s)\n", i+1, m.Name, m.ID)
		fmt.Printf("   %s, %s, %s %s | %s\n", m.Address, m.City, m.State, m.ZipCode, m.Phone)
		fmt.Printf("   Specialties: %s\n", strings.Join(m.Specialties, ", "))
		fmt.Printf("   Avg rating: %.1f (%d reviews)\n", m.AverageRating, m.TotalReviews)
	}
}

func randomMechanic(i int) model.Mechanic {
	city := cities[rand.Intn(len(cities))]
	email := fmt.Sprintf("mechanic%d@%s.com", i+1, strings.ToLower(city))
	website := fmt.Sprintf("www.mechanic%d%s.com", i+1, strings.ToLower(city))
	hours := "Mon-Fri 9am-5pm"

	n := 1 + rand.Intn(3)
	specialties := make([]string, 0, n)
	for _, j := range rand.Perm(len(specialtyPool))[:n] {
		specialties = append(specialties, specialtyPool[j])
	}

	return model.Mechanic{
		Name:           fmt.Sprintf("Random Mechanic #%d (%s)", i+1, city),
		Address:        fmt.Sprintf("%d Random St", 100+rand.Intn(9900)),
		City:           city,
		State:          states[rand.Intn(len(states))],
		ZipCode:        fmt.Sprintf("%05d", 10000+rand.Intn(89999)),
		Phone:          fmt.Sprintf("555-%03d-%04d", 100+rand.Intn(900), 1000+rand.Intn(9000)),
		Email:          &email,
		Website:        &website,
		Specialties:    specialties,
		OperatingHours: &hours,
	}
}
