package database

import (
	"Collabenote/config"
	"Collabenote/pkg/log"
	"context"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// NewFirestore 初始化 Firestore 客户端
func NewFirestore(conf *config.Config) *firestore.Client {
	ctx := context.Background()

	opts := make([]option.ClientOption, 0, 1)
	if conf.Firestore.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(conf.Firestore.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, conf.Firestore.ProjectID, opts...)
	if err != nil {
		log.L.Fatal("failed to create firestore client", zap.Error(err))
	}
	log.L.Info("firestore client success", zap.String("project", conf.Firestore.ProjectID))
	return client
}
