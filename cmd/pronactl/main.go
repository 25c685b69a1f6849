// Command pronactl manages the property catalog from the terminal. It
// talks to a running server through the API and authenticates with a
// token from `pronactl login` (or the PRONA_TOKEN environment variable).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bledarhoxha/prona/internal/client"
	"github.com/bledarhoxha/prona/internal/model"
)

const usage = `Usage: pronactl [flags] <command> [args]

Commands:
  login <email>            sign in and print a token
  list                     list all properties
  featured                 list featured properties
  get <id>                 show one property as JSON
  create                   create a property (see create -h)
  update <id>              update fields of a property (see update -h)
  delete <id>              delete a property

Flags:
  -server <url>   server base URL (default: http://localhost:8080, env PRONA_SERVER)
  -token <token>  bearer token for mutations (env PRONA_TOKEN)
`

func main() {
	serverURL := os.Getenv("PRONA_SERVER")
	if serverURL == "" {
		serverURL = "http://localhost:8080"
	}
	token := os.Getenv("PRONA_TOKEN")

	fs := flag.NewFlagSet("pronactl", flag.ContinueOnError)
	fs.StringVar(&serverURL, "server", serverURL, "")
	fs.StringVar(&token, "token", token, "")
	fs.Usage = func() { fmt.Fprint(os.Stdout, usage) }

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(1)
	}

	c := client.New(serverURL)
	c.SetToken(token)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	command := fs.Arg(0)
	args := fs.Args()[1:]

	var err error
	switch command {
	case "login":
		err = runLogin(ctx, c, args)
	case "list":
		err = runList(ctx, c)
	case "featured":
		err = runFeatured(ctx, c)
	case "get":
		err = runGet(ctx, c, args)
	case "create":
		err = runCreate(ctx, c, args)
	case "update":
		err = runUpdate(ctx, c, args)
	case "delete":
		err = runDelete(ctx, c, args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		fs.Usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runLogin(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: pronactl login <email>")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	var password string
	fmt.Scanln(&password)

	if err := c.Login(ctx, args[0], password); err != nil {
		return err
	}

	fmt.Println("Signed in. Export the token for later commands:")
	fmt.Printf("  export PRONA_TOKEN=%s\n", c.Token())
	return nil
}

func runList(ctx context.Context, c *client.Client) error {
	props, err := c.Properties(ctx)
	if err != nil {
		return err
	}
	printTable(props)
	return nil
}

func runFeatured(ctx context.Context, c *client.Client) error {
	props, err := c.Featured(ctx)
	if err != nil {
		return err
	}
	printTable(props)
	return nil
}

func runGet(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: pronactl get <id>")
	}

	p, err := c.Property(ctx, args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func runCreate(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	p := propertyFlags(fs, &model.Property{Type: model.TypeApartment, Status: model.StatusSale})
	fs.Parse(args)

	created, err := c.Create(ctx, p)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s (%s)\n", created.Title, created.ID)
	return nil
}

func runUpdate(ctx context.Context, c *client.Client, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: pronactl update <id> [flags]")
	}
	id := args[0]

	fs := flag.NewFlagSet("update", flag.ExitOnError)
	p := propertyFlags(fs, &model.Property{})
	var featured bool
	fs.BoolVar(&featured, "featured", false, "show on the home page")
	fs.Parse(args[1:])

	// Only flags the caller actually set become part of the patch.
	patch := &model.PropertyPatch{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			patch.Title = &p.Title
		case "description":
			patch.Description = &p.Description
		case "location":
			patch.Location = &p.Location
		case "price":
			patch.Price = &p.Price
		case "type":
			patch.Type = &p.Type
		case "status":
			patch.Status = &p.Status
		case "size":
			patch.Size = &p.Size
		case "rooms":
			patch.Rooms = &p.Rooms
		case "bathrooms":
			patch.Bathrooms = &p.Bathrooms
		case "images":
			patch.Images = &p.Images
		case "featured":
			patch.Featured = &featured
		}
	})

	if patch.IsEmpty() {
		return fmt.Errorf("no fields to update")
	}

	updated, err := c.Update(ctx, id, patch)
	if err != nil {
		return err
	}

	fmt.Printf("Updated %s (%s)\n", updated.Title, updated.ID)
	return nil
}

func runDelete(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: pronactl delete <id>")
	}

	if err := c.Delete(ctx, args[0]); err != nil {
		return err
	}

	fmt.Println("Deleted.")
	return nil
}

// propertyFlags registers the shared property field flags on fs and
// returns the property they fill in.
func propertyFlags(fs *flag.FlagSet, p *model.Property) *model.Property {
	fs.StringVar(&p.Title, "title", p.Title, "listing title")
	fs.StringVar(&p.Description, "description", p.Description, "listing description")
	fs.StringVar(&p.Location, "location", p.Location, "city and country")
	fs.Float64Var(&p.Price, "price", p.Price, "price in euros")
	fs.StringVar(&p.Type, "type", p.Type, "apartment, house or land")
	fs.StringVar(&p.Status, "status", p.Status, "sale or rent")
	fs.Float64Var(&p.Size, "size", p.Size, "size in square meters")
	fs.IntVar(&p.Rooms, "rooms", p.Rooms, "number of rooms")
	fs.IntVar(&p.Bathrooms, "bathrooms", p.Bathrooms, "number of bathrooms")
	fs.Func("images", "comma-separated image URLs", func(s string) error {
		for _, u := range strings.Split(s, ",") {
			if u = strings.TrimSpace(u); u != "" {
				p.Images = append(p.Images, u)
			}
		}
		return nil
	})
	return p
}

func printTable(props []model.Property) {
	if len(props) == 0 {
		fmt.Println("No properties.")
		return
	}

	fmt.Printf("%-36s  %-30s  %-24s  %10s  %-9s  %-8s\n", "ID", "TITLE", "LOCATION", "PRICE", "TYPE", "STATUS")
	for _, p := range props {
		title := p.Title
		if len(title) > 30 {
			title = title[:27] + "..."
		}
		location := p.Location
		if len(location) > 24 {
			location = location[:21] + "..."
		}
		fmt.Printf("%-36s  %-30s  %-24s  %10.0f  %-9s  %-8s\n", p.ID, title, location, p.Price, p.Type, p.Status)
	}
}
