package handlers

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/wizo06/offense-logger/bot"
)

// StatusHandler replies with host and bot statistics.
func StatusHandler(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	cpuCount, _ := cpu.Counts(true)
	cpuPercent, _ := cpu.Percent(0, false)
	vm, _ := mem.VirtualMemory()
	hostInfo, _ := host.Info()

	var dbSize int64
	if info, err := os.Stat(b.Config.DBPath); err == nil {
		dbSize = info.Size() / 1024 / 1024
	}

	usage := 0.0
	if len(cpuPercent) > 0 {
		usage = cpuPercent[0]
	}

	embed := &discordgo.MessageEmbed{
		Title: "STATUS",
		Color: 0x5865f2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "OS", Value: fmt.Sprintf("%s %s", hostInfo.Platform, hostInfo.PlatformVersion), Inline: true},
			{Name: "Go", Value: runtime.Version(), Inline: true},
			{Name: "CPUs", Value: fmt.Sprintf("%d", cpuCount), Inline: true},
			{Name: "CPU usage", Value: fmt.Sprintf("%.1f%%", usage), Inline: true},
			{Name: "Memory", Value: fmt.Sprintf("%.1f%% (%d MB / %d MB)", vm.UsedPercent, vm.Used/1024/1024, vm.Total/1024/1024), Inline: true},
			{Name: "Database size", Value: fmt.Sprintf("%d MB", dbSize), Inline: true},
			{Name: "Websocket latency", Value: s.HeartbeatLatency().String(), Inline: true},
			{Name: "Goroutines", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: time.Now().Format("2006-01-02 15:04:05"),
		},
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		b.Log.Error().Err(err).Msg("failed to send status response")
	}
}
