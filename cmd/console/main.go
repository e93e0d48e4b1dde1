// Простая консольная оболочка над ядром игры
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"slot_backend/internal/config/env"
	"slot_backend/internal/game"
)

// Значения по умолчанию, если config.yaml недоступен
const (
	defaultCredits = 1000
	defaultBet     = 1
	defaultBetMin  = 1
	defaultBetMax  = 10
)

// Лестница ставок для BET PLUS / BET MINUS
var defaultBetLevels = []uint{1, 2, 3, 5, 10}

func main() {
	credits := uint(defaultCredits)
	bet := uint(defaultBet)
	betMin := uint(defaultBetMin)
	betMax := uint(defaultBetMax)
	levels := defaultBetLevels

	if cfg, err := env.NewSlotConfigFromYAML("config.yaml"); err == nil {
		credits = cfg.StartCredits()
		bet = cfg.BetDefault()
		betMin = cfg.BetMin()
		betMax = cfg.BetMax()
		if len(cfg.BetLevels()) > 0 {
			levels = cfg.BetLevels()
		}
	} else {
		log.Printf("config.yaml not loaded, using defaults: %v", err)
	}

	g, err := game.New(credits, bet, betMin, betMax, nil)
	if err != nil {
		log.Fatalf("failed to create game: %v", err)
	}

	fmt.Println("Greetings!")
	fmt.Printf("Your balance: %d credits\n", g.Credits())
	fmt.Printf("Bet size: %d\n", g.Bet())
	printHelp()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		command := strings.ToUpper(strings.TrimSpace(scanner.Text()))

		switch {
		case command == "BALANCE":
			fmt.Printf("Your balance: %d credits.\n", g.Credits())
		case command == "BET":
			fmt.Printf("Current bet: %d credits.\n", g.Bet())
		case command == "BET PLUS":
			betPlus(g, levels)
		case command == "BET MINUS":
			betMinus(g, levels)
		case command == "SPIN":
			spin(g)
		case strings.HasPrefix(command, "AUTOSPIN"):
			autoSpin(g, command)
		case command == "HELP":
			printHelp()
		case command == "EXIT":
			return
		default:
			fmt.Println("Invalid command!")
		}
	}
}

func spin(g *game.Game) {
	symbols, err := g.Spin()
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(symbols)
	fmt.Printf("You win %d credits\n", g.Win())
}

func autoSpin(g *game.Game, command string) {
	fields := strings.Fields(command)
	if len(fields) != 2 {
		fmt.Println("Invalid command!")
		return
	}

	numberSpins, err := strconv.Atoi(fields[1])
	if err != nil || numberSpins <= 0 {
		fmt.Println("Invalid number of spins!")
		return
	}

	for i := 0; i < numberSpins; i++ {
		symbols, err := g.Spin()
		if err != nil {
			// Кредиты закончились, крутить дальше нет смысла
			fmt.Println(err)
			return
		}

		fmt.Println(symbols)
		fmt.Printf("You win %d credits\n", g.Win())
		time.Sleep(time.Second)
	}
}

// Повышение ставки на следующую ступень лестницы
func betPlus(g *game.Game, levels []uint) {
	for i, lvl := range levels {
		if lvl != g.Bet() {
			continue
		}
		if i == len(levels)-1 {
			fmt.Println("Max bet size!")
			return
		}
		setBet(g, levels[i+1])
		return
	}
	fmt.Println("Invalid bet size!")
}

// Понижение ставки на предыдущую ступень лестницы
func betMinus(g *game.Game, levels []uint) {
	for i, lvl := range levels {
		if lvl != g.Bet() {
			continue
		}
		if i == 0 {
			fmt.Println("Min bet size!")
			return
		}
		setBet(g, levels[i-1])
		return
	}
	fmt.Println("Invalid bet size!")
}

func setBet(g *game.Game, bet uint) {
	if err := g.SetBet(bet); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Bet size: %d.\n", g.Bet())
}

func printHelp() {
	fmt.Println("To get a balance, put the `balance`.")
	fmt.Println("To get a bet size, put the `bet`.")
	fmt.Println("To increase or decrease the size of the bet, put `bet plus` or `bet minus`.")
	fmt.Println("To spin the reels, put `spin`.")
	fmt.Println("To activate auto-spin, put `autospin <NUMBER>` where NUMBER is the number of spins.")
	fmt.Println("To quit, put `exit`.")
}
