package main

import (
	"flag"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	zerosvc "github.com/zeromicro/go-zero/core/service"

	"ledger-core-sol/internal/config"
	"ledger-core-sol/internal/service"
	"ledger-core-sol/internal/svc"
	"ledger-core-sol/pkg/logger"
)

var configFile = flag.String("f", "etc/inspect.yaml", "the config file")

func main() {
	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
		}
	}()

	flag.Parse()

	var c config.InspectConfig
	conf.MustLoad(*configFile, &c)

	logger.Init(c.LogConf.ToLogOption())
	defer logger.Sync()

	serviceContext := svc.NewInspectServiceContext(c)

	sg := zerosvc.NewServiceGroup()
	sg.Add(service.NewInspectService(serviceContext))

	logx.Infof("Starting inspect service")
	sg.Start()

	// 等待退出信号
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logx.Info("Shutting down services...")
	sg.Stop()
}
