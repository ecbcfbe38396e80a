package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/uhastre/EV-app/internal/api"
	"github.com/uhastre/EV-app/internal/pkg/constants"
	"github.com/uhastre/EV-app/internal/pkg/logger"
	"github.com/uhastre/EV-app/internal/pkg/store"
	"github.com/uhastre/EV-app/internal/pkg/store/xpgx"
	"github.com/uhastre/EV-app/internal/service/station"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Infof(ctx, ".env не найден, используем окружение процесса")
	}

	initConfig()

	pool, err := xpgx.NewPool(ctx, viper.GetString(constants.ViperKeyDatabaseDSN))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	svc, err := api.NewAPIService(store.NewStore(pool), station.Config{
		CacheDir:   viper.GetString(constants.ViperKeyCacheDir),
		RowTTL:     viper.GetDuration(constants.ViperKeyRowCacheTTL),
		SummaryTTL: viper.GetDuration(constants.ViperKeySummaryCacheTTL),
		MapTTL:     viper.GetDuration(constants.ViperKeyMapCacheTTL),
	})
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(viper.GetString(constants.ViperKeyAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %v", err)
	}
}

func initConfig() {
	viper.SetEnvPrefix("EVAPP")
	viper.AutomaticEnv()

	viper.SetDefault(constants.ViperKeyAddr, ":8080")
	viper.SetDefault(constants.ViperKeyCacheDir, "cache")
	viper.SetDefault(constants.ViperKeyCORSOrigin, "*")

	viper.SetDefault(constants.ViperKeyRowCacheTTL, 600*time.Second)
	viper.SetDefault(constants.ViperKeySummaryCacheTTL, 3600*time.Second)
	viper.SetDefault(constants.ViperKeyMapCacheTTL, 60*time.Second)
}
