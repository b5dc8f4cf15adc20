package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"recruitment-backend/config"
	"recruitment-backend/fiberlog"
	"recruitment-backend/lib/account"
	"recruitment-backend/lib/candidate"
	"recruitment-backend/lib/evaluation"
	xlsexport "recruitment-backend/lib/export/xls"
	filestorage "recruitment-backend/lib/file-storage"
	"recruitment-backend/lib/notification"
	"recruitment-backend/lib/position"
	boardhub "recruitment-backend/lib/ws/board-hub"
	s3client "recruitment-backend/s3"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	boardhub.Init()
	filestorage.NewHandler(s3client.Client)
	if s3client.Client != nil {
		if err := filestorage.Instance.EnsureBucket(ctx); err != nil {
			log.WithError(err).Error("S3 bucket check failed")
		}
	}
	xlsexport.NewHandler()
	account.NewHandler()
	position.NewHandler()
	candidate.NewHandler()
	notification.NewHandler()
	evaluation.NewHandler()
}
