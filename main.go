package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/apparentlymart/text2rasa/config"
	"github.com/apparentlymart/text2rasa/harvest"
	"github.com/apparentlymart/text2rasa/nlp"
	"github.com/apparentlymart/text2rasa/rasa"
	"github.com/apparentlymart/text2rasa/source"
	prompt "github.com/c-bata/go-prompt"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/pflag"
)

func main() {
	configFile := pflag.String("config", "", "YAML file with extraction settings")
	mediaType := pflag.String("media-type", "", "media type of the input file, overriding detection by filename")
	debug := pflag.Bool("debug", false, "show verbose tagging and merging decisions")
	interactive := pflag.Bool("interactive", false, "read input lines from the terminal instead of a file")
	pflag.Parse()
	args := pflag.Args()

	if *debug {
		nlp.SetDebugLog(os.Stderr, "nlp: ")
		rasa.SetDebugLog(os.Stderr, "rasa: ")
		source.SetDebugLog(os.Stderr, "source: ")
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %s\n", err)
		os.Exit(1)
	}
	if *mediaType != "" {
		cfg.MediaType = *mediaType
	}

	parser := nlp.NewProseParser()
	parser.IncludePronouns = cfg.IncludePronouns

	if *interactive {
		if len(args) != 1 {
			errUsage()
		}
		os.Exit(chat(parser, cfg, args[0], *debug))
	}
	if len(args) != 2 {
		errUsage()
	}
	os.Exit(convert(parser, cfg, args[0], args[1], *debug))
}

func convert(parser nlp.Parser, cfg *config.Config, trainingFile, inputFile string, debug bool) int {
	f, err := os.Open(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open %s: %s\n", inputFile, err)
		return 1
	}
	passages, err := source.ReadPassages(f, inputFile, cfg.MediaType)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read %s: %s\n", inputFile, err)
		return 1
	}

	ts, ok := loadTrainingSet(trainingFile)
	if !ok {
		return 1
	}

	log.Printf("Extracting examples from %d passages in %s...", len(passages), inputFile)
	var total harvest.Result
	for _, passage := range passages {
		result, err := harvest.Harvest(parser, passage, ts, cfg.HarvestOptions())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to parse %s: %s\n", inputFile, err)
			return 1
		}
		if debug {
			fmt.Fprintf(os.Stderr, "%s", spew.Sdump(result))
		}
		total.Utterances = append(total.Utterances, result.Utterances...)
		total.Intents = append(total.Intents, result.Intents...)
		total.Duplicates += result.Duplicates
		total.Skipped += result.Skipped
	}
	log.Printf("Added %d utterances and %d intents (%d duplicates ignored)", len(total.Utterances), len(total.Intents), total.Duplicates)

	if !saveTrainingSet(ts, trainingFile) {
		return 1
	}

	src, err := ts.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to serialize training data: %s\n", err)
		return 1
	}
	os.Stdout.Write(src)
	return 0
}

func chat(parser nlp.Parser, cfg *config.Config, trainingFile string, debug bool) int {
	ts, ok := loadTrainingSet(trainingFile)
	if !ok {
		return 1
	}

	fmt.Printf("Type some text and I'll add what I can find in it to %s. Type \"exit\" to save and quit.\n", trainingFile)
	for {
		inp := strings.TrimSpace(prompt.Input("> ", noComplete))
		if inp == "exit" || inp == "quit" {
			break
		}
		if inp == "" {
			continue
		}
		result, err := harvest.Harvest(parser, inp, ts, cfg.HarvestOptions())
		if err != nil {
			fmt.Printf("sorry... i couldn't make sense of that :(\n%s\n", err)
			continue
		}
		if debug {
			spew.Dump(result)
		}
		if len(result.Utterances) == 0 && len(result.Intents) == 0 {
			fmt.Printf("nothing new there\n")
			continue
		}
		for _, u := range result.Utterances {
			fmt.Printf("+ utterance %q\n", u)
		}
		for _, i := range result.Intents {
			fmt.Printf("+ intent %s\n", i)
		}
	}

	if !saveTrainingSet(ts, trainingFile) {
		return 1
	}
	fmt.Printf("bye! %d examples saved in %s\n", len(ts.Examples()), trainingFile)
	return 0
}

func loadTrainingSet(filename string) (*rasa.TrainingSet, bool) {
	ts, created, err := rasa.LoadOrCreateFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading training data from %q: %s\n", filename, err)
		return nil, false
	}
	if created {
		log.Printf("File %s not found, starting with no training data.", filename)
	}
	return ts, true
}

func saveTrainingSet(ts *rasa.TrainingSet, filename string) bool {
	err := ts.SaveFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save training data: %s\n", err)
		return false
	}
	return true
}

func errUsage() {
	os.Stderr.WriteString("Usage: text2rasa [options] <training-data-file> <input-file>\n       text2rasa --interactive [options] <training-data-file>\n")
	os.Exit(1)
}

func noComplete(d prompt.Document) []prompt.Suggest {
	return nil
}
