// Command chainstat fills a chainmap table with keys and logs how they spread over the buckets.
//
// Usage:
//
//	chainstat [-config chainstat.toml] [-keys keys.txt]
//
// Without a key file, keys "key-0" to "key-<n-1>" are generated, n being the configured number of keys.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"github.com/gostonefire/chainmap"
	"github.com/gostonefire/chainmap/hashfunc"
	"go.uber.org/zap"
	"os"
)

func main() {
	configFile := flag.String("config", "", "TOML configuration file")
	keysFile := flag.String("keys", "", "file with one key per line")
	flag.Parse()

	conf, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(conf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	keys, err := loadKeys(*keysFile, conf.Keys)
	if err != nil {
		logger.Error("failed to load keys", zap.Error(err))
		os.Exit(1)
	}

	stat, err := run(conf, keys, logger)
	if err != nil {
		logger.Error("run failed", zap.Error(err))
		os.Exit(1)
	}

	fields := []zap.Field{
		zap.String("algorithm", stat.Algorithm),
		zap.Int("records", stat.Records),
		zap.Int("buckets", stat.Buckets),
		zap.Int("usedBuckets", stat.UsedBuckets),
		zap.Int("longestChain", stat.LongestChain),
		zap.Float64("loadFactor", stat.LoadFactor),
	}
	if conf.Distribution {
		fields = append(fields, zap.Ints("bucketDistribution", stat.BucketDistribution))
	}
	logger.Info("table statistics", fields...)
}

// newLogger - Returns a JSON logger writing to stdout at the configured level
func newLogger(conf Config) (*zap.Logger, error) {
	level, err := conf.level()
	if err != nil {
		return nil, err
	}

	loggerConfig := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return loggerConfig.Build()
}

// loadKeys - Returns the keys of fileName, one per line with empty lines skipped, or n generated keys if fileName
// is empty
func loadKeys(fileName string, n int) (keys []string, err error) {
	if fileName == "" {
		keys = make([]string, n)
		for i := range keys {
			keys[i] = fmt.Sprintf("key-%d", i)
		}
		return
	}

	f, err := os.Open(fileName)
	if err != nil {
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			keys = append(keys, line)
		}
	}
	if err = scanner.Err(); err != nil {
		err = fmt.Errorf("error while reading key file %s: %s", fileName, err)
	}

	return
}

// run - Inserts keys into a new table, removes every RemoveEvery-th key, verifies the remaining keys can be looked
// up by their bytes and returns the table statistics.
func run(conf Config, keys []string, logger *zap.Logger) (stat chainmap.HashMapStat, err error) {
	algorithm, err := conf.hashAlgorithm()
	if err != nil {
		return
	}

	table, err := chainmap.NewWithConf[string, int](chainmap.Conf[string]{
		KeyHasher:     hashfunc.Strings{},
		HashAlgorithm: algorithm,
	})
	if err != nil {
		return
	}

	for i, key := range keys {
		capacity := table.Capacity()
		table.Insert(key, i)
		if table.Capacity() != capacity {
			logger.Debug("table grew", zap.Int("buckets", table.Capacity()), zap.Int("records", table.Len()))
		}
	}
	logger.Debug("keys loaded", zap.Int("keys", len(keys)), zap.Int("records", table.Len()))

	removed := make(map[string]bool)
	if conf.RemoveEvery > 0 {
		for i := conf.RemoveEvery - 1; i < len(keys); i += conf.RemoveEvery {
			if _, ok := table.Remove(keys[i]); ok {
				removed[keys[i]] = true
			}
		}
		logger.Debug("keys removed", zap.Int("removed", len(removed)), zap.Int("records", table.Len()))
	}

	for _, key := range keys {
		if removed[key] {
			continue
		}
		if !table.ContainsBy(hashfunc.BytesProbe(key)) {
			err = fmt.Errorf("key %q not found after loading", key)
			return
		}
	}

	stat = table.Stat(conf.Distribution)

	return
}
