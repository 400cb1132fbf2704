package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/scenetx/animation"
	"github.com/matt-g-everett/scenetx/api"
	"github.com/matt-g-everett/scenetx/scene"
	"github.com/matt-g-everett/scenetx/stream"
)

type app struct {
	Config   stream.Config
	Client   mqtt.Client
	Manager  *animation.Manager
	Scene    *scene.Scene
	Streamer *stream.Streamer
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if err := a.Streamer.PublishManifest(); err != nil {
		log.Printf("Failed to publish manifest: %v", err)
	}
}

func (a *app) readConfig(configPath string) {
	config, err := stream.ReadConfig(configPath)
	if err != nil {
		panic(err)
	}
	a.Config = config
}

func (a *app) buildScene(ctx context.Context, rng *rand.Rand) {
	descriptors, err := scene.Load(a.Config.Scene)
	if err != nil {
		panic(err)
	}

	var loader scene.Loader
	if a.Config.Assets != "" {
		loader = scene.NewFileLoader(a.Config.Assets)
	}

	a.Manager = animation.NewManager(nil)
	a.Scene, err = scene.NewBuilder(a.Manager, loader, rng).Build(ctx, descriptors)
	if err != nil {
		panic(err)
	}
}

// startWhenLoaded starts the animations once every object's assets are in.
func (a *app) startWhenLoaded(ctx context.Context) {
	if err := a.Scene.Gate().Wait(ctx); err != nil {
		return
	}
	if err := a.Manager.Start(); err != nil {
		log.Println(err)
	}
}

func (a *app) run(ctx context.Context) {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	defer a.Client.Disconnect(250)

	go a.startWhenLoaded(ctx)
	if err := a.Streamer.Run(ctx); err != nil && err != context.Canceled {
		log.Println(err)
	}
	log.Println("Stopped")
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	rng := rand.New(rand.NewSource(time.Now().UTC().UnixNano()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: broker=%s scene=%q frameRate=%v", a.Config.Mqtt.URL, a.Config.Scene, a.Config.FrameRate)

	a.buildScene(ctx, rng)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)
	a.Streamer = stream.NewStreamer(a.Config, stream.NewMqttPublisher(a.Client, 0), a.Manager, a.Scene)

	server := api.NewApi(a.Config.HTTP.Static, a.Streamer)
	go func() {
		if err := server.Serve(a.Config.HTTP.Listen); err != nil {
			log.Println(err)
		}
	}()

	a.run(ctx)
}
