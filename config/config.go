package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		TCPAddr  string `mapstructure:"tcp_addr"`
		HTTPAddr string `mapstructure:"http_addr"`
	}
	Game struct {
		BuyIn         int64 `mapstructure:"buy_in"`
		TableSize     int   `mapstructure:"table_size"`
		MaxRooms      int   `mapstructure:"max_rooms"`
		StartingChips int64 `mapstructure:"starting_chips"`
	}
	Database struct {
		DSN string
	}
	Redis struct {
		Enabled  bool
		Addr     string
		Password string
		DB       int
	}
	JWT struct {
		Secret string
	}
	Admin struct {
		Key string
	}
}

var C Config

func Load() {
	viper.SetConfigFile("config/config.yaml")

	viper.SetDefault("server.tcp_addr", ":50001")
	viper.SetDefault("server.http_addr", ":8080")
	viper.SetDefault("game.buy_in", 100)
	viper.SetDefault("game.table_size", 4)
	viper.SetDefault("game.max_rooms", 20)
	viper.SetDefault("game.starting_chips", 1000)
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)

	if err := viper.ReadInConfig(); err != nil {
		// 没有配置文件时用默认值启动
		log.Printf("config: %v, using defaults", err)
	}
	if err := viper.Unmarshal(&C); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}
}
