package main

import (
	"scene-demo/internal/assets"
	"scene-demo/internal/commands"
	"scene-demo/internal/config"
	"scene-demo/internal/debug"
	"scene-demo/internal/env"
	"scene-demo/internal/fonts"
	"scene-demo/internal/frame"
	"scene-demo/internal/graphics"
	"scene-demo/internal/logger"
	"scene-demo/internal/params"
	"scene-demo/internal/scene"
	"scene-demo/internal/terminal"
	"scene-demo/internal/ui"
)

func main() {
	_, envErr := env.Load(".env")
	cfg, cfgErr := config.Load(env.Get(env.ConfigPath, config.DefaultPath))
	log := logger.New(env.Get(env.LogPath, cfg.Log.Path))
	if envErr != nil {
		log.Log("env: " + envErr.Error())
	}
	if cfgErr != nil {
		log.Log(cfgErr.Error() + " (using defaults)")
	}

	sc := scene.New()
	cfg.ApplyScene(sc)
	pn := params.New()
	scene.Bind(pn, sc, cfg.Settings())

	images := assets.Load(cfg.Assets.Textures, sc.TextureKeys(), cfg.Assets.FaceSize, func(err error) {
		log.Log("assets: " + err.Error() + " (using placeholder)")
	})

	w, h := float32(cfg.Window.Width), float32(cfg.Window.Height)
	session := frame.NewSession(sc, pn, cfg.CameraValue(), frame.Viewport{Width: w, Height: h})

	var font *graphics.Font
	if cfg.UI.Font != "" {
		path, err := fonts.Resolve(cfg.UI.Font)
		if err != nil {
			log.Logf("ui: font %q not found under %v (using default font)", cfg.UI.Font, fonts.BaseDirs())
		} else {
			font = graphics.NewFont(path, cfg.UI.FontSize)
		}
	}

	reg := commands.NewRegistry()
	commands.RegisterScene(reg, session, log)
	term := terminal.New(log, reg, font)

	panel := ui.NewPanel(font)
	panel.Visible = cfg.Debug.ShowPanel
	dbg := debug.New(font)
	dbg.ShowFPS = cfg.Debug.ShowFPS
	dbg.ShowMemAlloc = cfg.Debug.ShowMemAlloc
	dbg.ShowHits = cfg.Debug.ShowHits

	host := graphics.NewHost(images, dbg, panel, term)
	loop := frame.NewLoop(session, host, log)
	input := &graphics.Input{Over: func(x, y float32) bool {
		return panel.Over(x, y) || term.Over(x, y)
	}}

	log.Logf("scene demo started, logging to %s", log.Path())
	graphics.Run(cfg.Window, func() {
		term.Update()
		input.Poll(session)
		loop.Tick()
	}, func() {
		font.Unload()
		host.Close()
	})
	log.Log("scene demo closed")
}
