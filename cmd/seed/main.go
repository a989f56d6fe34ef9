package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"foodgram/database"
	"foodgram/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func printHelp() {
	fmt.Println("Usage: seed <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  tags                      Load the tag reference set")
	fmt.Println("  ingredients -file <csv>   Load ingredients from a CSV file (name,unit per line)")
	fmt.Println("  all -file <csv>           Load tags and ingredients")
}

func main() {
	ingredientsCmd := flag.NewFlagSet("ingredients", flag.ExitOnError)
	ingredientsFile := ingredientsCmd.String("file", "data/ingredients.csv", "CSV file with name,measurement_unit rows")

	allCmd := flag.NewFlagSet("all", flag.ExitOnError)
	allFile := allCmd.String("file", "data/ingredients.csv", "CSV file with name,measurement_unit rows")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	switch os.Args[1] {
	case "tags":
		if err := utils.SeedTags(database.DB); err != nil {
			log.Fatalf("Failed to seed tags: %v", err)
		}
	case "ingredients":
		ingredientsCmd.Parse(os.Args[2:])
		if err := utils.SeedIngredients(database.DB, *ingredientsFile); err != nil {
			log.Fatalf("Failed to seed ingredients: %v", err)
		}
	case "all":
		allCmd.Parse(os.Args[2:])
		if err := utils.SeedTags(database.DB); err != nil {
			log.Fatalf("Failed to seed tags: %v", err)
		}
		if err := utils.SeedIngredients(database.DB, *allFile); err != nil {
			log.Fatalf("Failed to seed ingredients: %v", err)
		}
	default:
		printHelp()
		os.Exit(1)
	}

	log.Println("Seeding completed")
}
