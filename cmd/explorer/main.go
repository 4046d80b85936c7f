// cmd/explorer/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"cruise-explorer/internal/catalog"
	"cruise-explorer/internal/common/config"
	"cruise-explorer/internal/common/database"
	stderrors "cruise-explorer/internal/common/errors"
	"cruise-explorer/internal/common/logger"
	"cruise-explorer/internal/content"
	"cruise-explorer/internal/export"
	"cruise-explorer/internal/favorites"
	"cruise-explorer/internal/match"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	var (
		configPath = flag.String("config", "", "path to a yaml config file (defaults to ./configs/config.yaml)")
		brandsFlag = flag.Bool("brands", false, "print the brand picker table")
		brandFlag  = flag.String("brand", "", "filter voyages by brand id (virgin, royal, carnival, celebrity, norwegian, disney, other)")
		searchFlag = flag.String("search", "", "filter voyages by case-insensitive title substring")
		voyageFlag = flag.String("voyage", "", "show one voyage in detail with its matched experiences")
		saveFlag   = flag.String("save", "", "toggle a saved item, format kind:id (e.g. cruise:42)")
		removeFlag = flag.String("remove", "", "remove every saved item with this id")
		listFlag   = flag.Bool("list", false, "print the saved list")
		exportFlag = flag.Bool("export", false, "print a mailto link for the saved list")
	)
	flag.Parse()

	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting cruise explorer...")

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	ctx := context.Background()

	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Address, mux); err != nil {
				zapLog.Warn("metrics endpoint stopped", zap.Error(err))
			}
		}()
		zapLog.Info("metrics endpoint listening", zap.String("address", cfg.Metrics.Address))
	}

	// --- Init Redis with retry ---
	var redisClient *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redisClient.Ping(ctx)
	}, 3, time.Second, zapLog, "Redis connection")

	if err != nil {
		// The saved list degrades to session-only memory; browsing still works.
		storeErr := stderrors.NewStoreUnavailableError(err)
		zapLog.Warn("redis unavailable, favorites will not persist", zap.String("error", storeErr.Error()))
	} else {
		defer redisClient.Close()
		zapLog.Info("Redis connected successfully")
	}

	store := favorites.NewStore(ctx, redisClient, cfg.Favorites.StorageKey, log)

	// --- Load and normalize the content snapshot ---
	fetcher := content.NewFetcher(cfg.Content, log)
	snapshot := fetcher.FetchAll(ctx)

	normalizer := catalog.NewNormalizer(log)
	cat := normalizer.Snapshot(snapshot)

	matcher := match.NewMatcher(log)

	switch {
	case *brandsFlag:
		runBrands()
	case *saveFlag != "":
		runSave(ctx, store, cat, *saveFlag)
	case *removeFlag != "":
		store.Remove(ctx, *removeFlag)
		fmt.Printf("Removed %q. %d item(s) saved.\n", *removeFlag, store.Count())
	case *listFlag:
		runList(store)
	case *exportFlag:
		fmt.Println(export.MailtoLink(cfg.Export.Subject, export.BuildBody(store.List())))
	case *voyageFlag != "":
		runVoyageDetail(cat, matcher, *voyageFlag)
	default:
		runBrowse(cat, catalog.BrandID(*brandFlag), *searchFlag)
	}
}

func runBrands() {
	for _, b := range catalog.Brands() {
		fmt.Printf("%-10s %s (%s)\n", b.ID, b.Name, b.Slogan)
	}
}

func runBrowse(cat catalog.Catalog, brand catalog.BrandID, search string) {
	voyages := catalog.Filter(cat.Voyages, brand, search)
	if len(voyages) == 0 {
		fmt.Println("No voyages match.")
		return
	}
	for _, v := range voyages {
		fmt.Printf("[%s] %s | %s, %d nights from %s, $%s\n",
			v.ID, v.Title, v.ShipName, v.NightsCount, v.DeparturePort, v.PriceAmount)
	}
}

func runVoyageDetail(cat catalog.Catalog, matcher *match.Matcher, id string) {
	for _, v := range cat.Voyages {
		if v.ID != id {
			continue
		}

		brandName := string(v.BrandID)
		if b, ok := catalog.BrandByID(v.BrandID); ok {
			brandName = b.Name
		}

		fmt.Printf("%s\n%s • %s • %d nights • $%s\n", v.Title, brandName, v.ShipName, v.NightsCount, v.PriceAmount)
		if len(v.ItineraryPorts) > 0 {
			fmt.Printf("Itinerary: %s\n", strings.Join(v.ItineraryPorts, " → "))
		}
		if v.AffiliateLink != "" {
			fmt.Printf("Book: %s\n", v.AffiliateLink)
		}
		for _, item := range v.AccessoryItems {
			fmt.Printf("Pack: %s (%s)\n", item.Title, item.Link)
		}

		matched := matcher.Relevant(v, cat.Activities)
		if len(matched) > 0 {
			fmt.Println("\nExperiences at your ports:")
			for _, a := range matched {
				fmt.Printf("- [%s] %s in %s, $%s\n", a.ID, a.Title, a.Port, a.PriceAmount)
			}
		}
		return
	}
	fmt.Printf("No voyage with id %q.\n", id)
	os.Exit(1)
}

func runSave(ctx context.Context, store *favorites.Store, cat catalog.Catalog, arg string) {
	kindStr, id, ok := strings.Cut(arg, ":")
	if !ok || id == "" {
		fmt.Println("save expects kind:id, e.g. cruise:42")
		os.Exit(2)
	}

	entry, found := lookupEntry(cat, favorites.Kind(kindStr), id)
	if !found {
		fmt.Printf("No %s with id %q in the current catalog.\n", kindStr, id)
		os.Exit(1)
	}

	if store.Toggle(ctx, entry) {
		fmt.Printf("Saved %s. %d item(s) saved.\n", entry.Title, store.Count())
	} else {
		fmt.Printf("Removed %s. %d item(s) saved.\n", entry.Title, store.Count())
	}
}

func lookupEntry(cat catalog.Catalog, kind favorites.Kind, id string) (favorites.Entry, bool) {
	switch kind {
	case favorites.KindCruise:
		for _, v := range cat.Voyages {
			if v.ID == id {
				return favorites.VoyageEntry(v), true
			}
		}
	case favorites.KindActivity:
		for _, a := range cat.Activities {
			if a.ID == id {
				return favorites.ActivityEntry(a), true
			}
		}
	case favorites.KindEssential:
		for _, e := range cat.Essentials {
			if e.ID == id {
				return favorites.EssentialEntry(e), true
			}
		}
	}
	return favorites.Entry{}, false
}

func runList(store *favorites.Store) {
	entries := store.List()
	if len(entries) == 0 {
		fmt.Println("Your list is empty.")
		return
	}
	for _, e := range entries {
		fmt.Printf("[%s:%s] %s ($%s)\n", e.Kind, e.ID, e.Title, e.Price)
	}
}
