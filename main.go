package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	qhttp "heartrisk/http"
	"heartrisk/logging"
	"heartrisk/ml"
)

type Config struct {
	Http struct {
		Port           int           `yaml:"port"`
		Timeout        time.Duration `yaml:"timeout"`
		AllowedOrigins []string      `yaml:"allowed_origins"`
	} `yaml:"http"`
	Model struct {
		Paths []string `yaml:"paths"`
	} `yaml:"model"`
	Log logging.Config `yaml:"log"`
}

func main() {
	config, err := loadConfig("config.yaml")
	if err != nil {
		// Missing config is not fatal; run on defaults.
		config = &Config{}
	}
	if len(config.Model.Paths) == 0 {
		config.Model.Paths = []string{"model/rf_pipeline.json", "rf_pipeline.json"}
	}

	logger := logging.New(config.Log)
	defer logger.Sync()

	// Load the model artifact once, before serving. A failed load puts the
	// service in degraded mode: /predict answers 500 until restart.
	model, err := ml.LoadClassifier(config.Model.Paths...)
	if err != nil {
		logger.Error("model load failed, serving in degraded mode", zap.Error(err))
	} else {
		logger.Info("model loaded", zap.Strings("candidates", config.Model.Paths))
	}
	qhttp.SetGateway(ml.NewGateway(model, logger))

	server := qhttp.NewServer(qhttp.ServerConfig{
		Port:           config.Http.Port,
		Timeout:        config.Http.Timeout,
		AllowedOrigins: config.Http.AllowedOrigins,
	}, logger)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	if err := server.Stop(); err != nil {
		logger.Warn("server forced to shutdown", zap.Error(err))
	}

	logger.Info("exiting")
}

func loadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
