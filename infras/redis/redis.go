package redis

import (
	"context"
	"fmt"
	"glamp/config"
	"net"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Options builds the client options from config. A connection URL takes
// precedence over the host and port settings.
func Options(cfg *config.Config) (*goRedis.Options, error) {
	redisCfg := cfg.Cache.Redis

	var opts *goRedis.Options

	if redisCfg.URL != "" {
		parsed, err := goRedis.ParseURL(redisCfg.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}

		opts = parsed
	} else {
		opts = &goRedis.Options{
			Addr:     net.JoinHostPort(redisCfg.Primary.Host, redisCfg.Primary.Port),
			Password: redisCfg.Primary.Password,
			DB:       redisCfg.Primary.DB,
		}
	}

	if redisCfg.TimeoutSeconds > 0 {
		timeout := time.Duration(redisCfg.TimeoutSeconds) * time.Second
		opts.DialTimeout = timeout
		opts.ReadTimeout = timeout
		opts.WriteTimeout = timeout
	}

	return opts, nil
}

func New(cfg *config.Config) *goRedis.Client {
	opts, err := Options(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure Redis")
	}

	client := goRedis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.DialTimeout+time.Second)
	defer cancel()

	// Wizard state and submit locks live here, so the service does not start without it.
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", opts.Addr).Msg("Failed to connect to Redis")
	}

	log.Info().Int("db", opts.DB).Str("addr", opts.Addr).Msg("Connected to Redis")

	return client
}
