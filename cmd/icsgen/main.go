package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"

	ics "github.com/icsforge/icsgen"
)

// document is the YAML input shape. Calendar and event mappings are decoded
// as raw nodes so that field order in the file is preserved in the output.
type document struct {
	Timezone string      `yaml:"timezone"`
	Calendar yaml.Node   `yaml:"calendar"`
	Events   []yaml.Node `yaml:"events"`
}

func mappingFields(n yaml.Node) ([]ics.Field, error) {
	if n.Kind == 0 {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping at line %d", n.Line)
	}
	fields := make([]ics.Field, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("field %q at line %d is not a scalar", k.Value, v.Line)
		}
		fields = append(fields, ics.Field{Key: k.Value, Value: v.Value})
	}
	return fields, nil
}

func run(c *cli.Context) error {
	data, err := os.ReadFile(c.String("input"))
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	tz := c.String("timezone")
	if tz == "" {
		tz = doc.Timezone
	}
	loc := time.Local
	if tz != "" {
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return fmt.Errorf("loading timezone %q: %w", tz, err)
		}
	}

	props, err := mappingFields(doc.Calendar)
	if err != nil {
		return fmt.Errorf("calendar properties: %w", err)
	}
	builder, err := ics.New(props, ics.WithLocation(loc))
	if err != nil {
		return err
	}
	for i, ev := range doc.Events {
		fields, err := mappingFields(ev)
		if err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		if err := builder.AddEvent(fields...); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}

	out := builder.Serialize()
	if path := c.String("output"); path != "" {
		return os.WriteFile(path, []byte(out), 0644)
	}
	fmt.Print(out)
	return nil
}

func main() {
	app := cli.App{
		Name:  "icsgen",
		Usage: "generate an iCalendar document from a YAML event list",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input, i",
				Usage: "YAML file with calendar properties and events",
				Value: "events.yaml",
			},
			&cli.StringFlag{
				Name:  "output, o",
				Usage: "write the document to this file instead of stdout",
			},
			&cli.StringFlag{
				Name:  "timezone, z",
				Usage: "IANA timezone overriding the document and process default",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
