package main

import (
	"context"
	"fmt"
	"path/filepath"

	"volumelock/audio"
	"volumelock/common"
	"volumelock/config"
	"volumelock/iconfont"
	"volumelock/store"
	"volumelock/tray"
)

// application wires the tray presence, the keeper loop, and the
// snapshot store together for GUI mode.
type application struct {
	cfg       *config.Config
	resolver  *iconfont.Resolver
	snapshots *store.Store
	ctrl      common.VolumeController
	keeper    *audio.Keeper
	coord     *tray.Coordinator
	host      tray.Host

	quitCh chan struct{}
}

func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	common.GetLogger().SetLevel(cfg.LogLevel())

	dataDir, err := common.GetDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolving data directory: %w", err)
	}
	snapshots, err := store.Open(filepath.Join(dataDir, common.SnapshotDBName))
	if err != nil {
		return nil, fmt.Errorf("opening snapshot store: %w", err)
	}

	// TODO: replace the mock with a mixer-backed controller once the
	// platform audio bindings land.
	ctrl := audio.NewMockController(cfg.TargetVolume,
		common.DeviceInfo{ID: "default", Name: "Default Output"},
	)

	keeper := audio.NewKeeper(ctrl, audio.KeeperConfig{
		Interval:     common.KeeperInterval,
		TargetVolume: cfg.TargetVolume,
		Devices:      cfg.Devices,
	})

	resolver := iconfont.NewResolver(nil, nil)

	app := &application{
		cfg:       cfg,
		resolver:  resolver,
		snapshots: snapshots,
		ctrl:      ctrl,
		keeper:    keeper,
		quitCh:    make(chan struct{}),
	}

	host, err := tray.NewHost(tray.NewScreenLayout(), resolver)
	if err != nil {
		snapshots.Close()
		return nil, fmt.Errorf("starting tray backend: %w", err)
	}
	app.host = host

	loader := tray.NewGlyphIconLoader(resolver)
	app.coord = tray.NewCoordinator(host, loader, app)
	app.coord.SetShowWindowHandler(app.showWindow)

	return app, nil
}

// Run brings the tray up and blocks until the user exits or the
// context is cancelled.
func (a *application) Run(ctx context.Context) error {
	if err := a.coord.Initialize(); err != nil {
		a.shutdown()
		return err
	}

	if a.cfg.Locked {
		a.keeper.Start()
		a.coord.UpdateTrayIcon(false)
	} else {
		a.coord.UpdateTrayIcon(true)
	}

	select {
	case <-ctx.Done():
	case <-a.quitCh:
	}

	a.shutdown()
	return nil
}

func (a *application) shutdown() {
	a.keeper.Stop()
	a.coord.Dispose()
	a.resolver.Teardown()
	if err := a.snapshots.Close(); err != nil {
		common.LogWarn("Closing snapshot store: %v", err)
	}
}

// CreateMainContextMenu builds the tray menu. Implements
// tray.MenuBuilder.
func (a *application) CreateMainContextMenu() (*tray.Menu, error) {
	lockTitle := "Lock Volume"
	lockGlyph := common.GlyphLock
	if a.cfg.Locked {
		lockTitle = "Unlock Volume"
		lockGlyph = common.GlyphLockOpen
	}

	return &tray.Menu{Items: []tray.MenuItem{
		{Title: lockTitle, Glyph: lockGlyph, Handler: a.toggleLock},
		{Title: "Show Window", Glyph: common.GlyphWindow, Handler: a.showWindow},
		tray.Separator(),
		{Title: "Exit", Glyph: common.GlyphPower, Handler: a.requestQuit},
	}}, nil
}

// toggleLock flips the lock, snapshotting levels on the way in and
// clearing them on the way out.
func (a *application) toggleLock() {
	ctx := context.Background()

	if a.cfg.Locked {
		a.keeper.Stop()
		for _, id := range a.lockTargets() {
			if err := a.snapshots.DeleteDevice(ctx, id); err != nil {
				common.LogWarn("Clearing snapshots for %s: %v", id, err)
			}
		}
		a.cfg.Locked = false
	} else {
		for _, id := range a.lockTargets() {
			level, err := a.ctrl.Volume(id)
			if err != nil {
				common.LogWarn("Reading %s before lock: %v", id, err)
				continue
			}
			if _, err := a.snapshots.SaveSnapshot(ctx, id, level); err != nil {
				common.LogWarn("Snapshotting %s: %v", id, err)
			}
		}
		a.keeper.Start()
		a.cfg.Locked = true
	}

	if err := a.cfg.Save(); err != nil {
		common.LogWarn("Saving configuration: %v", err)
	}
	a.coord.UpdateTrayIcon(!a.cfg.Locked)
}

func (a *application) lockTargets() []string {
	if len(a.cfg.Devices) > 0 {
		return a.cfg.Devices
	}
	devices, err := a.ctrl.Devices()
	if err != nil {
		common.LogWarn("Enumerating devices: %v", err)
		return nil
	}
	ids := make([]string, len(devices))
	for i, d := range devices {
		ids[i] = d.ID
	}
	return ids
}

// showWindow would surface the main window. The window itself lives
// outside the tray subsystem; until it exists the action logs.
func (a *application) showWindow() {
	common.LogInfo("Show window requested")
}

// requestQuit unblocks Run. Called from a menu handler, so it must not
// wait on tray teardown itself.
func (a *application) requestQuit() {
	select {
	case <-a.quitCh:
	default:
		close(a.quitCh)
	}
}
