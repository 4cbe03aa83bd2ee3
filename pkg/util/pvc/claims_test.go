package pvc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	pulsarv1alpha1 "github.com/numtide/pulsar-operator/api/v1alpha1"
)

func TestBuildClaimTemplate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		volume  *pulsarv1alpha1.VolumeConfig
		want    corev1.PersistentVolumeClaim
		wantErr bool
	}{
		"with storage class": {
			volume: &pulsarv1alpha1.VolumeConfig{Name: "journal", Size: "20Gi", StorageClassName: ptr.To("fast")},
			want: corev1.PersistentVolumeClaim{
				ObjectMeta: metav1.ObjectMeta{Name: "journal", Labels: map[string]string{"a": "b"}},
				Spec: corev1.PersistentVolumeClaimSpec{
					AccessModes:      []corev1.PersistentVolumeAccessMode{corev1.ReadWriteOnce},
					StorageClassName: ptr.To("fast"),
					Resources: corev1.VolumeResourceRequirements{
						Requests: corev1.ResourceList{corev1.ResourceStorage: resource.MustParse("20Gi")},
					},
				},
			},
		},
		"invalid size": {
			volume:  &pulsarv1alpha1.VolumeConfig{Name: "data", Size: "big"},
			wantErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := BuildClaimTemplate(tc.volume, map[string]string{"a": "b"})
			if (err != nil) != tc.wantErr {
				t.Fatalf("BuildClaimTemplate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.wantErr {
				return
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("BuildClaimTemplate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
