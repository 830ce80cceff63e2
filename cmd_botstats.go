package main

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"

	"osintbot/internal/format"
	"osintbot/internal/model"
)

// BotStatsCmd reports host health of the machine running the bot plus a
// few service counters. Useful when a lookup feels slow and you want to
// know whether the box or the network is to blame.
type BotStatsCmd struct {
	// collect is swappable so tests feed a fixed snapshot.
	collect func() (model.HostStats, error)
}

func NewBotStatsCmd() *BotStatsCmd {
	return &BotStatsCmd{collect: collectHostStats}
}

func (c *BotStatsCmd) Description() string { return "Bot host diagnostics" }
func (c *BotStatsCmd) MinArgs() int        { return 0 }
func (c *BotStatsCmd) Usage() string       { return "/botstats" }

func collectHostStats() (model.HostStats, error) {
	var s model.HostStats

	if percents, err := cpu.Percent(500*time.Millisecond, false); err == nil {
		s.CPU = format.SafeFloat(percents, 0)
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		s.RAM = vm.UsedPercent
		s.RAMFreeMB = vm.Available / 1024 / 1024
		s.RAMTotalMB = vm.Total / 1024 / 1024
	}
	if avg, err := load.Avg(); err == nil {
		s.Load1m = avg.Load1
	}
	if up, err := host.Uptime(); err == nil {
		s.Uptime = up
	}
	du, err := disk.Usage("/")
	if err != nil {
		return s, fmt.Errorf("disk usage: %w", err)
	}
	s.DiskUsed = du.UsedPercent
	s.DiskFree = du.Free

	return s, nil
}

func (c *BotStatsCmd) Execute(app *AppContext, bot BotAPI, sess *Session, msg *tgbotapi.Message, args []string) {
	stats, err := c.collect()
	if err != nil {
		safeSend(bot, sess.ChatID, format.UserError("botstats", err))
		return
	}

	var b strings.Builder
	b.WriteString("📊 *Bot Host Stats*\n\n")
	b.WriteString(fmt.Sprintf("🖥 CPU: %s %.0f%%\n", format.MakeProgressBar(stats.CPU), stats.CPU))
	b.WriteString(fmt.Sprintf("🧠 RAM: %s %.0f%% (%s free of %s)\n",
		format.MakeProgressBar(stats.RAM), stats.RAM,
		format.FormatRAM(stats.RAMFreeMB), format.FormatRAM(stats.RAMTotalMB)))
	b.WriteString(fmt.Sprintf("📈 Load (1m): %.2f\n", stats.Load1m))
	b.WriteString(fmt.Sprintf("💾 Disk: %s %.0f%% (%s free)\n",
		format.MakeProgressBar(stats.DiskUsed), stats.DiskUsed, format.FormatBytes(stats.DiskFree)))
	b.WriteString(fmt.Sprintf("⏱ Host uptime: %s\n\n", format.FormatUptime(stats.Uptime)))

	b.WriteString(fmt.Sprintf("🤖 Bot uptime: %s\n", format.FormatUptime(uint64(time.Since(app.StartTime).Seconds()))))
	b.WriteString(fmt.Sprintf("👥 Active sessions: %d\n", app.Sessions.Len()))
	b.WriteString(fmt.Sprintf("🧰 Commands: %d\n", app.Registry.Len()))

	safeSend(bot, sess.ChatID, b.String())
}
