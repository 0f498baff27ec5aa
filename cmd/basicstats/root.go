package main

import (
	"context"
	"io"
	"strings"

	"github.com/hyp3rd/ewrap"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hyp3rd/basicstats"
	"github.com/hyp3rd/basicstats/internal/constants"
	"github.com/hyp3rd/basicstats/internal/libs/serializer"
	"github.com/hyp3rd/basicstats/pkg/middleware"
	"github.com/hyp3rd/basicstats/pkg/source"
	sampleredis "github.com/hyp3rd/basicstats/pkg/source/redis"
)

const (
	flagStat      = "stat"
	flagFormat    = "format"
	flagRedisAddr = "redis-addr"
	flagRedisKey  = "redis-key"
	flagServe     = "serve"
	flagVerbose   = "verbose"
)

func newRootCmd() (*cobra.Command, error) {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "basicstats [values...]",
		Short: "Compute mean, population standard deviation, lower median and L2 norm of a sample",
		Long: `basicstats reads a sample of floating-point values from its arguments, from stdin,
or from a Redis list, and prints a report of the requested statistics.

With --serve it runs an HTTP server exposing the same computations instead.
Every flag can also be set through the environment, e.g. BASICSTATS_REDIS_ADDR.
BASICSTATS_STAT takes a comma separated list, e.g. BASICSTATS_STAT=mean,l2.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, v)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceP(flagStat, "s", nil, "statistic to compute (repeatable, default: all)")
	flags.StringP(flagFormat, "f", "json", "output format: json, msgpack or cbor")
	flags.String(flagRedisAddr, "", "redis address to load the sample from")
	flags.String(flagRedisKey, "", "redis list holding the sample")
	flags.String(flagServe, "", "serve the HTTP API on this address instead of computing once")
	flags.BoolP(flagVerbose, "v", false, "log every computation")

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	err := v.BindPFlags(flags)
	if err != nil {
		return nil, ewrap.Wrap(err, "binding flags")
	}

	return cmd, nil
}

func run(cmd *cobra.Command, args []string, v *viper.Viper) error {
	logger := newLogger(cmd.ErrOrStderr(), v.GetBool(flagVerbose))

	svc, err := newService(statistics(v), &logger)
	if err != nil {
		return err
	}

	if addr := v.GetString(flagServe); addr != "" {
		return serve(cmd.Context(), addr, v.GetString(flagFormat), svc, &logger)
	}

	ser, err := serializer.New(v.GetString(flagFormat))
	if err != nil {
		return err
	}

	sample, err := loadSample(cmd, args, v)
	if err != nil {
		return err
	}

	report, err := svc.Summarize(cmd.Context(), sample)
	if err != nil {
		return err
	}

	data, err := ser.Marshal(report)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	_, err = out.Write(data)
	if err != nil {
		return ewrap.Wrap(err, "writing report")
	}

	if ser.ContentType() == "application/json" {
		_, _ = io.WriteString(out, "\n")
	}

	return nil
}

// statistics returns the requested statistic names. Flags arrive already
// split; an environment value such as "mean,l2" or "mean l2" does not.
func statistics(v *viper.Viper) []string {
	var names []string

	for _, value := range v.GetStringSlice(flagStat) {
		names = append(names, strings.FieldsFunc(value, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})...)
	}

	return names
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}

func newService(statistics []string, logger *zerolog.Logger) (basicstats.Service, error) {
	analyzer, err := basicstats.New(basicstats.WithStatistics(statistics...))
	if err != nil {
		return nil, err
	}

	// zerolog's Printf logs at debug level, so this is silent unless --verbose
	return basicstats.ApplyMiddleware(analyzer, func(next basicstats.Service) basicstats.Service {
		return middleware.NewLoggingMiddleware(next, logger)
	}), nil
}

// loadSample picks the sample source: a redis list, the arguments, or stdin.
func loadSample(cmd *cobra.Command, args []string, v *viper.Viper) ([]float64, error) {
	if key := v.GetString(flagRedisKey); key != "" {
		store, err := sampleredis.New(sampleredis.WithAddr(v.GetString(flagRedisAddr)))
		if err != nil {
			return nil, err
		}

		defer store.Close()

		return store.Load(cmd.Context(), key)
	}

	if len(args) > 0 {
		return source.ParseStrings(args)
	}

	return source.Parse(cmd.InOrStdin())
}

func serve(ctx context.Context, addr, format string, svc basicstats.Service, logger *zerolog.Logger) error {
	srv := basicstats.NewManagementHTTPServer(addr, basicstats.WithMgmtSerializer(format))

	err := srv.Start(ctx, svc)
	if err != nil {
		return err
	}

	logger.Info().Str("addr", srv.Address()).Strs("statistics", svc.Statistics()).Msg("serving")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), constants.DefaultShutdownTimeout)
	defer cancel()

	logger.Info().Msg("shutting down")

	return srv.Shutdown(shutdownCtx)
}
