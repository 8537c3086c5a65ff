package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"heartrisk/client"
	"heartrisk/logging"
)

type Config struct {
	Listen struct {
		Port int `yaml:"port"`
	} `yaml:"listen"`
	API struct {
		URL string `yaml:"url"`
	} `yaml:"api"`
	Log logging.Config `yaml:"log"`
}

func main() {
	config, err := loadConfig("formclient.yaml")
	if err != nil {
		config = &Config{}
	}
	if config.Listen.Port == 0 {
		config.Listen.Port = 8501
	}
	if config.API.URL == "" {
		config.API.URL = "http://127.0.0.1:8000"
	}

	logger := logging.New(config.Log)
	defer logger.Sync()

	api := client.New(config.API.URL, logger)
	app := client.NewFormApp(api, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.Listen.Port),
		Handler:      app.Routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("starting form client",
			zap.String("addr", server.Addr),
			zap.String("api_url", config.API.URL))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("form client failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down form client")
	server.Close()
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
