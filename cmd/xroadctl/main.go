package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/bytedance/sonic"
	pyroscope "github.com/grafana/pyroscope-go"
	"github.com/yanun0323/logs"
	"github.com/yanun0323/pkg/sys"

	"xroad/internal/errors"
	"xroad/internal/node"
	"xroad/internal/node/memnode"
	"xroad/internal/obs"
	"xroad/internal/object"
	"xroad/internal/ops"
	"xroad/internal/schema"
	"xroad/internal/store"
	"xroad/pkg/conn"
	"xroad/pkg/exception"
)

type options struct {
	ConfigPath string
	Kind       string
	Dump       bool
	Restore    bool
	Hold       bool
}

func main() {
	envPath := flag.String("env", "", "Path to .env file (default: ./.env)")
	configPath := flag.String("config", "", "Path to JSON config (default: $XROAD_CONFIG or config.json)")
	kind := flag.String("kind", "", "Print only records of this kind")
	dump := flag.Bool("dump", false, "Dump printable records to the configured store")
	restore := flag.Bool("restore", false, "Restore creatable records from the configured store before seeding")
	hold := flag.Bool("hold", false, "Keep running until shutdown signal")
	flag.Parse()

	env := ops.LoadEnv(*envPath)
	opt := options{
		ConfigPath: env.ConfigPath,
		Kind:       *kind,
		Dump:       *dump,
		Restore:    *restore,
		Hold:       *hold,
	}
	if *configPath != "" {
		opt.ConfigPath = *configPath
	}

	if err := run(context.Background(), os.Stdout, env, opt); err != nil {
		logs.Errorf("xroadctl failed, err: %+v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, env ops.Env, opt options) error {
	reg := schema.Default()
	loaded, err := loadConfig(opt.ConfigPath, reg)
	if err != nil {
		return err
	}
	if err := loaded.Override(env); err != nil {
		return err
	}
	logs.Infof("config: %s", loaded.String())

	if loaded.ProfileAddr != "" {
		profiler, err := startProfiler(loaded)
		if err != nil {
			return err
		}
		defer func() {
			_ = profiler.Stop()
		}()
	}

	n := memnode.New(reg)
	var rt node.Runtime = n
	var metrics *obs.Metrics
	if loaded.Features.Instrument {
		metrics = obs.NewMetrics()
		rt = obs.Instrument(n, metrics)
	}
	f := object.NewFactory(rt, reg)

	sink, err := openSink(ctx, loaded.Store)
	if err != nil {
		return err
	}
	if sink != nil {
		defer sink.Close()
	}

	if opt.Restore {
		src, ok := sink.(store.Source)
		if !ok {
			return errors.Wrap(exception.ErrInvalidConfig, "restore needs a pebble or postgres store")
		}
		if _, err := store.Restore(ctx, f, src, reg.CreatableKinds()...); err != nil {
			return err
		}
	}

	if _, err := ops.Seed(f, loaded.Records); err != nil {
		return err
	}

	kinds := reg.PrintableKinds()
	if opt.Kind != "" {
		kind, ok := schema.ParseKind(opt.Kind)
		if !ok {
			return errors.Wrapf(exception.ErrUnknownRecordKind, "kind %q", opt.Kind)
		}
		kinds = []schema.RecordKind{kind}
	}
	if err := printRecords(out, f, n, kinds); err != nil {
		return err
	}

	if opt.Dump || loaded.Features.Dump {
		if sink == nil {
			return errors.Wrap(exception.ErrInvalidConfig, "dump needs a pebble or postgres store")
		}
		if _, err := store.NewDumper(f, n, nil).Dump(ctx, sink); err != nil {
			return err
		}
	}

	if metrics != nil {
		printMetrics(metrics.Snapshot())
	}

	if opt.Hold {
		logs.Info("holding, waiting for shutdown")
		<-sys.Shutdown()
	}
	return nil
}

func loadConfig(path string, reg *schema.Registry) (ops.Loaded, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		logs.Infof("config %s not found, using defaults", path)
		return ops.Parse([]byte("{}"), reg)
	}
	return ops.Load(path, reg)
}

func openSink(ctx context.Context, spec ops.StoreSpec) (store.Sink, error) {
	switch spec.Kind {
	case ops.StorePebble:
		s, err := store.OpenPebble(spec.Dir, nil)
		if err != nil {
			return nil, err
		}
		return s, nil
	case ops.StorePostgres:
		s, err := store.OpenPostgres(ctx, conn.FromDSN(spec.DSN))
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, nil
	}
}

func printRecords(out io.Writer, f *object.Factory, cache node.Cache, kinds []schema.RecordKind) error {
	for _, kind := range kinds {
		var lineErr error
		err := f.Each(cache, kind, func(rec *object.Record) bool {
			dict, err := rec.ToDict()
			if err != nil {
				lineErr = err
				return false
			}
			data, err := sonic.ConfigFastest.Marshal(dict)
			if err != nil {
				lineErr = err
				return false
			}
			_, lineErr = fmt.Fprintf(out, "%s %s\n", kind, data)
			return lineErr == nil
		})
		if err == nil {
			err = lineErr
		}
		if err != nil {
			return errors.Wrapf(err, "print %s", kind)
		}
	}
	return nil
}

func printMetrics(snap obs.Snapshot) {
	seen := make([]obs.Op, 0, len(snap.OpCounts))
	for op := range snap.OpCounts {
		seen = append(seen, op)
	}
	sort.Slice(seen, func(i, j int) bool { return seen[i] < seen[j] })
	for _, op := range seen {
		logs.Infof("op %s: calls %d, errors %d", op, snap.OpCounts[op], snap.OpErrors[op])
	}
	logs.Infof("broken refs %d, null handles %d, latency avg %s max %s",
		snap.BrokenRefs, snap.NullHandles, snap.CallLatency.Avg, snap.CallLatency.Max)
}

func startProfiler(loaded ops.Loaded) (*pyroscope.Profiler, error) {
	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: "xroad/" + loaded.NodeName,
		ServerAddress:   loaded.ProfileAddr,
		Logger:          emptyLogger{},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "pyroscope start")
	}
	return profiler, nil
}

type emptyLogger struct{}

func (emptyLogger) Infof(_ string, _ ...interface{})  {}
func (emptyLogger) Debugf(_ string, _ ...interface{}) {}
func (emptyLogger) Errorf(_ string, _ ...interface{}) {}
