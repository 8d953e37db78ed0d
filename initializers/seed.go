package initializers

import (
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"onboard-tools-backend/config"
	"onboard-tools-backend/db"
	applicantstore "onboard-tools-backend/lib/applicant/store"
	"onboard-tools-backend/lib/seed"
)

// InitSeed fills an empty board with demo applicants on first start.
func InitSeed() {
	if !*config.Conf.Seed.OnStart {
		return
	}
	store := applicantstore.NewInstance(db.DB)
	count, err := store.Count()
	if err != nil {
		log.WithError(err).Error("failed to check applicant count before seeding")
		return
	}
	if count > 0 {
		return
	}
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	list := seed.Generate(config.Conf.Seed.Count, time.Now(), rnd)
	if err = store.CreateBatch(list); err != nil {
		log.WithError(err).Error("failed to seed demo applicants")
		return
	}
	log.WithField("count", len(list)).Info("seeded demo applicants")
}
