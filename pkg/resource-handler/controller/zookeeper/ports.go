package zookeeper

import (
	corev1 "k8s.io/api/core/v1"

	"github.com/numtide/pulsar-operator/pkg/resource-handler/controller/workload"
)

const (
	// ClientPortName is the client port name.
	ClientPortName = "client"
	// FollowerPortName is the quorum port name.
	FollowerPortName = "follower"
	// ElectionPortName is the leader election port name.
	ElectionPortName = "election"

	// FollowerPort is the quorum port.
	FollowerPort int32 = 2888
	// ElectionPort is the leader election port.
	ElectionPort int32 = 3888
)

func buildContainerPorts() []corev1.ContainerPort {
	return []corev1.ContainerPort{
		workload.ContainerPort(ClientPortName, workload.ZookeeperClientPort),
		workload.ContainerPort(FollowerPortName, FollowerPort),
		workload.ContainerPort(ElectionPortName, ElectionPort),
	}
}

func buildServicePorts() []corev1.ServicePort {
	return []corev1.ServicePort{
		workload.ServicePort(ClientPortName, workload.ZookeeperClientPort),
		workload.ServicePort(FollowerPortName, FollowerPort),
		workload.ServicePort(ElectionPortName, ElectionPort),
	}
}
