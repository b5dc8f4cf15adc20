package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "recruitment-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	for _, m := range []struct {
		name  string
		model interface{}
	}{
		{"Account", &dbmodels.Account{}},
		{"Position", &dbmodels.Position{}},
		{"Candidate", &dbmodels.Candidate{}},
		{"CVFile", &dbmodels.CVFile{}},
		{"CandidateHistory", &dbmodels.CandidateHistory{}},
		{"Notification", &dbmodels.Notification{}},
		{"NotificationPhoto", &dbmodels.NotificationPhoto{}},
		{"TrainingCourse", &dbmodels.TrainingCourse{}},
		{"PreparationTask", &dbmodels.PreparationTask{}},
		{"Evaluation", &dbmodels.Evaluation{}},
		{"EvaluationTask", &dbmodels.EvaluationTask{}},
	} {
		if err := DB.AutoMigrate(m.model); err != nil {
			return errors.Wrapf(err, "migration of %s failed", m.name)
		}
	}
	log.Info("migrations finished")
	return nil
}
