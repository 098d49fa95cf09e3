package service

import "VCS_Image_Dashboard/internal/dashboard/model"

const FallbackWarning = "Failed to fetch the server list, showing demo data."

var fallbackServers = []model.ServerRecord{
	{ID: "1", Customer: "Alibaba", ImageName: "nginx", Version: "1.21.0", ServerAddress: "192.168.1.100", Responsible: "Zhang San", Category: model.CategoryProduction, Status: model.StatusRunning},
	{ID: "2", Customer: "Tencent", ImageName: "postgres", Version: "14.2", ServerAddress: "192.168.1.101", Responsible: "Li Si", Category: model.CategoryDevelopment, Status: model.StatusRunning},
	{ID: "3", Customer: "Baidu", ImageName: "redis", Version: "6.2.6", ServerAddress: "192.168.1.102", Responsible: "Wang Wu", Category: model.CategoryTesting, Status: model.StatusStopped},
	{ID: "4", Customer: "ByteDance", ImageName: "mongodb", Version: "5.0.9", ServerAddress: "192.168.1.103", Responsible: "Zhao Liu", Category: model.CategoryStaging, Status: model.StatusRunning},
	{ID: "5", Customer: "Meituan", ImageName: "mysql", Version: "8.0.29", ServerAddress: "192.168.1.104", Responsible: "Sun Qi", Category: model.CategoryProduction, Status: model.StatusError},
	{ID: "6", Customer: "JD.com", ImageName: "elasticsearch", Version: "7.17.3", ServerAddress: "192.168.1.105", Responsible: "Zhou Ba", Category: model.CategoryProduction, Status: model.StatusRunning},
	{ID: "7", Customer: "NetEase Games", ImageName: "rabbitmq", Version: "3.9.15", ServerAddress: "192.168.1.106", Responsible: "Wu Jiu", Category: model.CategoryDevelopment, Status: model.StatusRunning},
	{ID: "8", Customer: "Xiaomi", ImageName: "kafka", Version: "3.1.0", ServerAddress: "192.168.1.107", Responsible: "Zheng Shi", Category: model.CategoryTesting, Status: model.StatusRunning},
}

// FallbackServers returns a fresh copy of the demo dataset.
func FallbackServers() []model.ServerRecord {
	res := make([]model.ServerRecord, len(fallbackServers))
	copy(res, fallbackServers)
	return res
}
