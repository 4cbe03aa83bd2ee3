// Package pvc provides utilities for PVC lifecycle management.
package pvc

import (
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
)

// BuildClaimTemplate converts a resolved VolumeConfig into a StatefulSet volume
// claim template. The claim is ReadWriteOnce and sized from v.Size.
func BuildClaimTemplate(
	v *pulsarv1alpha1.VolumeConfig,
	labels map[string]string,
) (corev1.PersistentVolumeClaim, error) {
	size, err := resource.ParseQuantity(v.Size)
	if err != nil {
		return corev1.PersistentVolumeClaim{}, fmt.Errorf("invalid size for volume %s: %w", v.Name, err)
	}
	return corev1.PersistentVolumeClaim{
		ObjectMeta: metav1.ObjectMeta{
			Name:   v.Name,
			Labels: labels,
		},
		Spec: corev1.PersistentVolumeClaimSpec{
			AccessModes:      []corev1.PersistentVolumeAccessMode{corev1.ReadWriteOnce},
			StorageClassName: v.StorageClassName,
			Resources: corev1.VolumeResourceRequirements{
				Requests: corev1.ResourceList{corev1.ResourceStorage: size},
			},
		},
	}, nil
}

// RetainPolicy keeps claims both when the StatefulSet is deleted and when it
// is scaled down. Bookie and ZooKeeper data must outlive their pods.
func RetainPolicy() *appsv1.StatefulSetPersistentVolumeClaimRetentionPolicy {
	return &appsv1.StatefulSetPersistentVolumeClaimRetentionPolicy{
		WhenDeleted: appsv1.RetainPersistentVolumeClaimRetentionPolicyType,
		WhenScaled:  appsv1.RetainPersistentVolumeClaimRetentionPolicyType,
	}
}
