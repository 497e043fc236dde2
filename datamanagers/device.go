package datamanagers

import (
	torch "github.com/wangkuiyi/gotorch"

	"github.com/MatteoPardi/Machine-Learning-Lab/util"
)

// Device resolves a device name, falling back to the CPU when CUDA is not
// available.
func Device(name string) torch.Device {
	if name == "cuda" {
		if torch.IsCUDAAvailable() {
			util.Logger.Info("CUDA is valid")
			return torch.NewDevice("cuda")
		}
		util.Logger.Warn("no CUDA found; CPU only")
		return torch.NewDevice("cpu")
	}
	return torch.NewDevice(name)
}
