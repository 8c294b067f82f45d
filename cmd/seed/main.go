// Command seed creates the demo user "kody" (password "twixrox") and the demo jokes.
// Running it again against a seeded database does nothing.
package main

import (
	"context"
	"log"
	"os"

	"remixjokes/src/core/domain"
	"remixjokes/src/infra/config"
	"remixjokes/src/infra/db"
	"remixjokes/src/infra/logger"
	"remixjokes/src/infra/repo"
)

const (
	demoUsername = "kody"
	// bcrypt of "twixrox"
	demoPasswordHash = "$2b$10$K7L1OJ45/4Y2nIvhRVpCe.FSmhDdWoXehVzJptJ/op0lSsvqNu/1u"
)

type demoJoke struct {
	name    string
	content string
}

var demoJokes = []demoJoke{
	{"Lessons", "I wear a stethoscope so that in a medical emergency I can teach people a valuable lesson about assumptions."},
	{"Comedian", "They laughed when I said I wanted to be a comedian - they’re not laughing now."},
	{"Balloon", "You will never guess what Elsa did to the balloon. She let it go."},
	{"Enough Shipping", "Did you hear the news? FedEx and UPS are merging. They’re going to go by the name Fed-Up from now on."},
	{"Turn Around", "What is a tornado's favorite game to play? Twister!"},
	{"Holy", "How do you make holy water? You boil the hell out of it."},
	{"Road worker", "I never wanted to believe that my Dad was stealing from his job as a road worker. But when I got home, all the signs were there."},
	{"Frisbee", "I was wondering why the frisbee was getting bigger, then it hit me."},
	{"Trees", "Why do trees seem suspicious on sunny days? Dunno, they're just a bit shady."},
	{"Skeletons", "Why don't skeletons ride roller coasters? They don't have the stomach for it."},
	{"Hippos", "Why don't you find hippopotamuses hiding in trees? They're really good at it."},
	{"Dinner", "What did one plate say to the other plate? Dinner is on me!"},
	{"Elevator", "My first time using an elevator was an uplifting experience. The second time let me down."},
}

func main() {
	if err := run(); err != nil {
		log.Printf("seed failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.LoadStorage()
	if err != nil {
		return err
	}
	log := logger.WithComponent(logger.New(cfg.Log), "seed")

	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	if err := pg.Migrate(ctx); err != nil {
		return err
	}

	store := repo.NewPostgresRepository(pg, log)

	if _, err := store.GetUserByUsername(ctx, demoUsername); err == nil {
		log.Info("demo data already present", "username", demoUsername)
		return nil
	} else if !domain.IsNotFound(err) {
		return err
	}

	kody, err := store.CreateUser(ctx, demoUsername, demoPasswordHash)
	if err != nil {
		return err
	}

	for _, j := range demoJokes {
		if _, err := store.CreateJoke(ctx, kody.ID, j.name, j.content); err != nil {
			return err
		}
	}

	log.Info("seeded demo data", "username", kody.Username, "jokes", len(demoJokes))
	return nil
}
